package category

import (
	"errors"
	"fmt"
	"strings"
)

// Fallback is returned by Classify for extensions no category claims.
const Fallback = "Others"

var (
	ErrEmptyName          = errors.New("category name cannot be empty")
	ErrBadExtension       = errors.New("extension must start with a dot")
	ErrDuplicateExtension = errors.New("extension already registered")
)

// Category is one named group of file extensions.
type Category struct {
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// Table maps file extensions to category names. It is immutable after
// construction; a single Table can be shared by any number of runs.
type Table struct {
	categories []Category
	byExt      map[string]string
}

// NewTable builds a Table from the given categories. Extensions are
// folded to lowercase. Every extension must carry its leading dot and
// may belong to exactly one category; a duplicate registration is an
// error rather than a silent first-wins lookup.
func NewTable(categories []Category) (*Table, error) {
	t := &Table{
		categories: make([]Category, 0, len(categories)),
		byExt:      make(map[string]string),
	}

	for _, c := range categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, ErrEmptyName
		}

		normalized := Category{Name: c.Name, Extensions: make([]string, 0, len(c.Extensions))}
		for _, ext := range c.Extensions {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				return nil, fmt.Errorf("%w: %q in category %s", ErrBadExtension, ext, c.Name)
			}
			if owner, taken := t.byExt[ext]; taken {
				return nil, fmt.Errorf("%w: %q claimed by both %s and %s", ErrDuplicateExtension, ext, owner, c.Name)
			}
			t.byExt[ext] = c.Name
			normalized.Extensions = append(normalized.Extensions, ext)
		}
		t.categories = append(t.categories, normalized)
	}

	return t, nil
}

// Classify returns the category name for ext, matching
// case-insensitively. Unknown extensions, including the empty one,
// classify as Fallback. Classify is total: it never fails.
func (t *Table) Classify(ext string) string {
	if name, ok := t.byExt[strings.ToLower(ext)]; ok {
		return name
	}
	return Fallback
}

// Categories returns the table's categories in registration order.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}
	}
	return out
}

// Extensions returns the total number of registered extensions.
func (t *Table) Extensions() int {
	return len(t.byExt)
}
