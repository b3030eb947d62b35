// Package recipes finds recipe markdown files and reads the front matter a
// thumbnail is built from.
package recipes

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoTitle is returned by Load for files with neither a front matter title
// nor a "# " heading. Such files are not recipes.
var ErrNoTitle = errors.New("recipe has no title")

const fence = "---"

// skip reports whether a markdown file is site furniture rather than a recipe.
func skip(name string) bool {
	return name == "view-all.md" ||
		strings.HasPrefix(name, "README") ||
		strings.HasPrefix(name, "LICENSE")
}

// Discover returns every recipe markdown file below root, in lexical order.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" || skip(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

// Load reads the recipe at path. The title falls back to the first "# "
// heading when the front matter has none.
func Load(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, err
	}
	fm, heading, err := split(data)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", path, err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = heading
	}
	if title == "" {
		return Page{}, fmt.Errorf("%s: %w", path, ErrNoTitle)
	}

	dir := filepath.Dir(path)
	p := Page{Path: path, Bundle: filepath.Base(dir)}
	p.Title = title
	p.PreviewImage = strings.TrimSpace(fm.PreviewImage)
	p.Difficulty = fm.Difficulties.String()
	p.Meal = fm.Meals.String()
	p.SourceDir = dir
	return p, nil
}

// split separates the front matter from the body and returns the parsed
// front matter along with the text of the first "# " heading in the body.
// Malformed YAML yields an empty FrontMatter, not an error; a line too long
// to scan does.
func split(data []byte) (FrontMatter, string, error) {
	var (
		inside  bool
		yamlSrc []string
		heading string
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == fence {
			inside = !inside
			continue
		}
		if inside {
			yamlSrc = append(yamlSrc, line)
			continue
		}
		if heading == "" && strings.HasPrefix(line, "# ") {
			heading = strings.TrimSpace(line[2:])
		}
	}
	if err := sc.Err(); err != nil {
		return FrontMatter{}, "", err
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(strings.Join(yamlSrc, "\n")), &fm); err != nil {
		return FrontMatter{}, heading, nil
	}
	return fm, heading, nil
}
