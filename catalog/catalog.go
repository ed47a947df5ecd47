// Package catalog holds the ordered, read-only list of previewable fonts.
//
// A Catalog is built once from a compiled-in table and never changes afterwards.
// Its length is the only bound used for selection wraparound; there is no separately
// declared font count anywhere in the module.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmpty      = errors.New("catalog: no entries")
	ErrMissingKey = errors.New("catalog: entry without asset key")
)

// Descriptor describes one selectable font
// Names may repeat across entries of different sizes
type Descriptor struct {
	Name     string
	Size     GlyphSize
	AssetKey string // Opaque key resolved by the asset library
}

// Ordering selects how entries are arranged at construction
type Ordering uint8

const (
	// Authored keeps the literal table order
	Authored Ordering = iota
	// Alphabetical stable-sorts by name, ties keep table order
	Alphabetical
)

func (o Ordering) String() string {
	switch o {
	case Authored:
		return "authored"
	case Alphabetical:
		return "alphabetical"
	default:
		return fmt.Sprintf("ordering(%d)", uint8(o))
	}
}

// ParseOrdering accepts the String forms
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "authored", "":
		return Authored, nil
	case "alphabetical", "sorted":
		return Alphabetical, nil
	}
	return Authored, fmt.Errorf("unknown catalog ordering %q", s)
}

// Catalog is an immutable ordered sequence of descriptors
type Catalog struct {
	entries []Descriptor
	order   Ordering
}

// New copies entries and arranges them according to order
func New(entries []Descriptor, order Ordering) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	for i, d := range entries {
		if d.AssetKey == "" {
			return nil, fmt.Errorf("%w: index %d (%s)", ErrMissingKey, i, d.Name)
		}
	}

	owned := make([]Descriptor, len(entries))
	copy(owned, entries)

	if order == Alphabetical {
		sort.SliceStable(owned, func(i, j int) bool {
			return owned[i].Name < owned[j].Name
		})
	}

	return &Catalog{entries: owned, order: order}, nil
}

// At returns the descriptor at index i
// Panics when i is outside [0, Size())
func (c *Catalog) At(i int) Descriptor {
	if i < 0 || i >= len(c.entries) {
		panic(fmt.Sprintf("catalog: index %d out of range [0,%d)", i, len(c.entries)))
	}
	return c.entries[i]
}

// Size returns the number of entries
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Ordering returns the policy the catalog was built with
func (c *Catalog) Ordering() Ordering {
	return c.order
}

// Keys returns asset keys in catalog order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, d := range c.entries {
		keys[i] = d.AssetKey
	}
	return keys
}
