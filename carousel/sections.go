package carousel

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SectionsFile is the name of the optional override at the site root.
const SectionsFile = "carousels.yaml"

//go:embed sections.yaml
var defaultSections []byte

// Section is a documentation section with its own carousel landing page.
type Section struct {
	Name    string `yaml:"name" validate:"required"`
	Label   string `yaml:"label" validate:"required"`
	Heading string `yaml:"heading"`
	Blurb   string `yaml:"blurb"`
	Single  bool   `yaml:"single"`
	Items   []Item `yaml:"items" validate:"dive"`
}

// Carousel returns a fresh carousel over the section's items.
func (s Section) Carousel() *Carousel {
	if s.Single {
		return NewSingle(s.Items)
	}
	return New(s.Items)
}

// LoadSections reads carousels.yaml from fsys, falling back to the built-in
// sections when the file does not exist, and points every item at base.
func LoadSections(fsys fs.FS, base string) ([]Section, error) {
	b, err := fs.ReadFile(fsys, SectionsFile)
	if errors.Is(err, fs.ErrNotExist) {
		b = defaultSections
	} else if err != nil {
		return nil, fmt.Errorf("LoadSections: %w", err)
	}
	return parseSections(b, base)
}

func parseSections(b []byte, base string) ([]Section, error) {
	var sections []Section
	err := yaml.Unmarshal(b, &sections)
	if err != nil {
		return nil, fmt.Errorf("parseSections: %w", err)
	}
	validate := validator.New()
	base = strings.TrimSuffix(base, "/")
	seen := make(map[string]bool, len(sections))
	for i := range sections {
		err = validate.Struct(sections[i])
		if err != nil {
			return nil, fmt.Errorf("parseSections: section %d: %w", i, err)
		}
		if seen[sections[i].Name] {
			return nil, fmt.Errorf("parseSections: duplicate section %q", sections[i].Name)
		}
		seen[sections[i].Name] = true
		for j := range sections[i].Items {
			it := &sections[i].Items[j]
			it.Href = base + "/" + strings.TrimPrefix(it.Slug, "/")
		}
	}
	return sections, nil
}

// Find returns the section with the given name.
func Find(sections []Section, name string) (Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
