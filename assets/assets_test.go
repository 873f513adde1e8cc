package assets

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	cfg "github.com/automoto/mascot/config"
)

func TestDrawMascotRGBA(t *testing.T) {
	img := DrawMascotRGBA(64)

	if got := img.Bounds().Dx(); got != 64 {
		t.Fatalf("Expected width 64, got %d", got)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", a)
	}
	// just left of center sits between the eyes and above the smile
	if got := img.RGBAAt(32, 36); got != cfg.UI.MascotBody {
		t.Errorf("Expected body color near center, got %v", got)
	}
	if got := img.RGBAAt(32, 4); got != cfg.UI.MascotOutline {
		t.Errorf("Expected outline color near the top edge, got %v", got)
	}
}

func TestDrawMascotRGBAZeroSize(t *testing.T) {
	if img := DrawMascotRGBA(0); !img.Bounds().Empty() {
		t.Errorf("Expected empty image, got %v", img.Bounds())
	}
}

func TestDecodeMascot(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeMascot(&buf)
	if err != nil {
		t.Fatalf("DecodeMascot() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 3x2, got %v", img.Bounds())
	}
}

func TestDecodeMascotRejectsGarbage(t *testing.T) {
	if _, err := DecodeMascot(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected an error for garbage input")
	}
}
