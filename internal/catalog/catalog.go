// Package catalog loads the embedded sections and their code comparisons.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/sidebyside/internal/model"
)

//go:embed catalog.yaml
var embedded []byte

// Side selects one half of a comparison.
type Side string

// Comparison sides.
const (
	SideReact   Side = "react"
	SideAngular Side = "angular"
)

// ParseSide accepts "react" or "angular", case-insensitively. Empty means react.
func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(SideReact):
		return SideReact, nil
	case string(SideAngular):
		return SideAngular, nil
	default:
		return "", fmt.Errorf("unknown side %q (want react or angular)", raw)
	}
}

// Category is a named group of sections in navigation order.
type Category struct {
	Name     string
	Sections []model.Section
}

// Catalog is an immutable, ordered set of sections.
type Catalog struct {
	sections []model.Section
	byPath   map[string]int
}

type document struct {
	Sections []model.Section `yaml:"sections"`
}

var knownDemos = map[model.Demo]struct{}{
	model.DemoNone:         {},
	model.DemoCounter:      {},
	model.DemoTodos:        {},
	model.DemoPassword:     {},
	model.DemoStopwatch:    {},
	model.DemoPrimes:       {},
	model.DemoPosts:        {},
	model.DemoStorage:      {},
	model.DemoRegistration: {},
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("catalog has no sections")
	}
	c := &Catalog{
		sections: doc.Sections,
		byPath:   make(map[string]int, len(doc.Sections)),
	}
	for i, s := range doc.Sections {
		if s.Path == "" || s.Label == "" {
			return nil, fmt.Errorf("section %d: path and label are required", i)
		}
		if _, dup := c.byPath[s.Path]; dup {
			return nil, fmt.Errorf("section %q: duplicate path", s.Path)
		}
		if _, ok := knownDemos[s.Demo]; !ok {
			return nil, fmt.Errorf("section %q: unknown demo %q", s.Path, s.Demo)
		}
		for j, cmp := range s.Comparisons {
			if cmp.Angular.Text == "" {
				return nil, fmt.Errorf("section %q comparison %d: angular code is required", s.Path, j)
			}
		}
		c.byPath[s.Path] = i
	}
	return c, nil
}

// Sections returns every section in navigation order.
func (c *Catalog) Sections() []model.Section {
	return append([]model.Section(nil), c.sections...)
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.sections)
}

// At returns the section at index i.
func (c *Catalog) At(i int) model.Section {
	return c.sections[i]
}

// Index returns the position of path, or -1. A leading slash is ignored.
func (c *Catalog) Index(path string) int {
	if i, ok := c.byPath[strings.TrimPrefix(path, "/")]; ok {
		return i
	}
	return -1
}

// Section looks up a section by path.
func (c *Catalog) Section(path string) (model.Section, bool) {
	i := c.Index(path)
	if i < 0 {
		return model.Section{}, false
	}
	return c.sections[i], true
}

// Categories groups sections by category in order of first appearance.
func (c *Catalog) Categories() []Category {
	var out []Category
	pos := map[string]int{}
	for _, s := range c.sections {
		i, ok := pos[s.Category]
		if !ok {
			i = len(out)
			pos[s.Category] = i
			out = append(out, Category{Name: s.Category})
		}
		out[i].Sections = append(out[i].Sections, s)
	}
	return out
}

// Snippet returns one side of comparison index (zero-based) in section path.
func (c *Catalog) Snippet(path string, index int, side Side) (model.CodeSnippet, error) {
	s, ok := c.Section(path)
	if !ok {
		return model.CodeSnippet{}, fmt.Errorf("unknown section %q", path)
	}
	if index < 0 || index >= len(s.Comparisons) {
		return model.CodeSnippet{}, fmt.Errorf("section %q has %d comparisons, index %d out of range", path, len(s.Comparisons), index)
	}
	cmp := s.Comparisons[index]
	if side == SideAngular {
		return cmp.Angular, nil
	}
	if !cmp.HasReact() {
		return model.CodeSnippet{}, fmt.Errorf("section %q comparison %d has no react snippet", path, index)
	}
	return cmp.React, nil
}
