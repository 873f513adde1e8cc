package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	cfg "github.com/automoto/mascot/config"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
)

// SpriteResolution is the edge length of the procedural sprite. The
// renderer scales it to the layout size.
const SpriteResolution = 256

// LoadMascot returns the mascot image: the file at path when given, or the
// procedural sprite otherwise.
func LoadMascot(path string) (*ebiten.Image, error) {
	if path == "" {
		return ebiten.NewImageFromImage(DrawMascotRGBA(SpriteResolution)), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mascot image: %w", err)
	}
	defer f.Close()

	img, err := DecodeMascot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeMascot decodes a png, jpeg or webp image.
func DecodeMascot(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode mascot image: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode mascot image: empty %s image", format)
	}
	return img, nil
}

// DrawMascotRGBA paints the default mascot: a round body with an outline,
// two eyes and a smile, on a transparent square of the given size.
func DrawMascotRGBA(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}

	s := float64(size)
	c := s / 2
	body := s * 0.46
	outline := s * 0.035
	eyeR := s * 0.055
	eyeDX, eyeY := s*0.15, c-s*0.08
	smileR, smileW := s*0.2, s*0.03

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			d := math.Hypot(px-c, py-c)

			var clr color.RGBA
			switch {
			case d > body:
				continue
			case d > body-outline:
				clr = cfg.UI.MascotOutline
			default:
				clr = cfg.UI.MascotBody
			}

			le := math.Hypot(px-(c-eyeDX), py-eyeY)
			re := math.Hypot(px-(c+eyeDX), py-eyeY)
			if le < eyeR || re < eyeR {
				clr = cfg.UI.MascotFace
			}

			// lower half of a ring below the eyes
			sd := math.Hypot(px-c, py-(c+s*0.02))
			if py > c+s*0.05 && math.Abs(sd-smileR) < smileW/2 {
				clr = cfg.UI.MascotFace
			}

			// soften the silhouette edge
			if edge := body - d; edge < 1 {
				clr.A = uint8(float64(clr.A) * edge)
			}
			img.SetRGBA(x, y, premultiply(clr))
		}
	}
	return img
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
