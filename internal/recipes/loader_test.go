package recipes

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeRecipe(t *testing.T, root, rel, body string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeRecipe(t, root, "thai/medium/basil-chicken/index.md", "# Basil chicken\n")
	writeRecipe(t, root, "italian/easy/risotto/index.md", "# Risotto\n")
	writeRecipe(t, root, "view-all.md", "# Everything\n")
	writeRecipe(t, root, "README.md", "# Cookbook\n")
	writeRecipe(t, root, "LICENSE.md", "MIT\n")
	writeRecipe(t, root, "italian/easy/risotto/cover.jpg", "jpeg")

	got, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(root, "italian/easy/risotto/index.md"),
		filepath.Join(root, "thai/medium/basil-chicken/index.md"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	path := writeRecipe(t, root, "spicy-thai-basil-chicken/index.md", `---
title: Spicy Thai Basil Chicken
previewimage: cover.jpg
difficulties: Medium
meals:
  - Dinner
  - Lunch
---

# Ignored heading

Fry the garlic first.
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Title != "Spicy Thai Basil Chicken" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.PreviewImage != "cover.jpg" {
		t.Errorf("PreviewImage = %q", p.PreviewImage)
	}
	if p.Difficulty != "Medium" || p.Meal != "Dinner, Lunch" {
		t.Errorf("Difficulty = %q, Meal = %q", p.Difficulty, p.Meal)
	}
	if p.Bundle != "spicy-thai-basil-chicken" || p.SourceDir != filepath.Dir(path) {
		t.Errorf("Bundle = %q, SourceDir = %q", p.Bundle, p.SourceDir)
	}
}

func TestLoad_HeadingFallback(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "soup/index.md", "---\nmeals: Lunch\n---\n\n# Tomato soup\n\n## Ingredients\n")
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Title != "Tomato soup" {
		t.Errorf("Title = %q, want heading text", p.Title)
	}
	if p.Difficulty != "" {
		t.Errorf("Difficulty = %q, want empty", p.Difficulty)
	}
}

func TestLoad_NoTitle(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "notes/index.md", "---\nmeals: Lunch\n---\nJust notes.\n")
	if _, err := Load(path); !errors.Is(err, ErrNoTitle) {
		t.Fatalf("err = %v, want ErrNoTitle", err)
	}
}

func TestSplit_Malformed(t *testing.T) {
	fm, heading, err := split([]byte("---\ntitle: [unclosed\n---\n# Heading\n"))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !reflect.DeepEqual(fm, FrontMatter{}) {
		t.Errorf("malformed front matter parsed as %+v", fm)
	}
	if heading != "Heading" {
		t.Errorf("heading = %q, want Heading", heading)
	}
}

func TestSplit_CRLF(t *testing.T) {
	fm, _, err := split([]byte("---\r\ntitle: Dal\r\ndifficulties: Easy\r\n---\r\nbody\r\n"))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if fm.Title != "Dal" || fm.Difficulties.String() != "Easy" {
		t.Errorf("unexpected front matter %+v", fm)
	}
}

func TestLoad_LineTooLong(t *testing.T) {
	body := "---\ntitle: Soup\n---\n" + strings.Repeat("x", 2<<20) + "\n"
	path := writeRecipe(t, t.TempDir(), "soup/index.md", body)
	if _, err := Load(path); !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("err = %v, want bufio.ErrTooLong", err)
	}
}
