package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	face := f.Face(38)
	if got := face.Metrics().Height.Ceil(); got < 38 {
		t.Errorf("line height %d is smaller than the font size", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.ttf"), garbage} {
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%s) succeeded, want error", path)
		}
	}
}

func TestLoadSet_MissingSans(t *testing.T) {
	serif := filepath.Join(t.TempDir(), "serif.ttf")
	if err := os.WriteFile(serif, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSet(serif, serif+".missing"); err == nil {
		t.Fatal("expected an error for the missing sans-serif font")
	}
}

func TestSet_Faces(t *testing.T) {
	faces := Embedded().Faces(DefaultSizes())
	if faces.Heading == nil || faces.Label == nil || faces.Value == nil {
		t.Fatalf("missing faces: %+v", faces)
	}
	label := faces.Label.Metrics().Ascent
	value := faces.Value.Metrics().Ascent
	heading := faces.Heading.Metrics().Ascent
	if !(label < value && value < heading) {
		t.Errorf("ascents not ordered by size: label %v value %v heading %v", label, value, heading)
	}

	again := Embedded().Faces(DefaultSizes())
	if again.Heading == faces.Heading {
		t.Error("Faces returned a shared face")
	}
}
