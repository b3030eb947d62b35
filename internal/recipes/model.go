package recipes

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/youruser/cookthumb/internal/thumbnail"
)

// Page is one recipe markdown file inside its page bundle.
type Page struct {
	Path   string `json:"path"`
	Bundle string `json:"bundle"` // base name of the page bundle directory
	thumbnail.Recipe
}

// FrontMatter is the subset of a recipe's YAML front matter used for
// thumbnails.
type FrontMatter struct {
	Title        string   `yaml:"title"`
	PreviewImage string   `yaml:"previewimage"`
	Difficulties Taxonomy `yaml:"difficulties"`
	Meals        Taxonomy `yaml:"meals"`
}

// Taxonomy is a Hugo taxonomy value, written either as a single string or a
// list of strings.
type Taxonomy []string

// UnmarshalYAML accepts a scalar or a sequence.
func (t *Taxonomy) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = Taxonomy{s}
		return nil
	default:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = list
		return nil
	}
}

// String joins the terms with ", ".
func (t Taxonomy) String() string {
	return strings.Join(t, ", ")
}
