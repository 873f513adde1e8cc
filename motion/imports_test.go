package motion

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/automoto/mascot/"

// The simulation is shared with the terminal app, so nothing it pulls in
// from this module may depend on the graphics stack.
func TestMotionImportsStayHeadless(t *testing.T) {
	forbidden := []string{"github.com/hajimehoshi/ebiten", "github.com/yohamta/donburi"}

	seen := map[string]bool{}
	queue := []string{"motion"}
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if seen[pkg] {
			continue
		}
		seen[pkg] = true

		for _, imp := range packageImports(t, filepath.Join("..", filepath.FromSlash(pkg))) {
			for _, f := range forbidden {
				if strings.HasPrefix(imp, f) {
					t.Errorf("Package %s imports %s", pkg, imp)
				}
			}
			if rest, ok := strings.CutPrefix(imp, modulePath); ok {
				queue = append(queue, rest)
			}
		}
	}
	if !seen["config"] || !seen["gamemath"] {
		t.Errorf("Expected to walk config and gamemath, walked %v", seen)
	}
}

// packageImports lists the imports of the non-test Go files in dir.
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Reading %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	var imports []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("Parsing %s: %v", name, err)
		}
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				t.Fatalf("Bad import in %s: %v", name, err)
			}
			imports = append(imports, path)
		}
	}
	return imports
}
