package asset

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Handle references a loaded sheet; valid only for the Library that issued it
type Handle int

// InvalidHandle is never issued
const InvalidHandle Handle = -1

// Library resolves manifest keys to decoded sheets
// Loading happens once, before any lookup
type Library struct {
	root     string
	manifest *Manifest
	fallback bool

	sheets []*Sheet
	byKey  map[string]Handle
	loaded bool
}

// NewLibrary creates a library reading files relative to root
// With fallback, unreadable sheets are replaced by Builtin
func NewLibrary(root string, m *Manifest, fallback bool) *Library {
	return &Library{
		root:     root,
		manifest: m,
		fallback: fallback,
		byKey:    make(map[string]Handle),
	}
}

// LoadAll decodes every manifest entry in key order
// Returns the first failure when fallback is off
func (l *Library) LoadAll() error {
	if l.loaded {
		return nil
	}
	for _, key := range l.manifest.Keys() {
		sheet, err := l.load(l.manifest.Fonts[key])
		if err != nil {
			if !l.fallback {
				return fmt.Errorf("load %q: %w", key, err)
			}
			log.Printf("asset %q: %v (using builtin sheet)", key, err)
			sheet = Builtin()
		}
		l.byKey[key] = Handle(len(l.sheets))
		l.sheets = append(l.sheets, sheet)
	}
	l.loaded = true
	log.Printf("asset library: %d sheets loaded from %s", len(l.sheets), l.root)
	return nil
}

func (l *Library) load(rel string) (*Sheet, error) {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, rel)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSheet(f)
}

// Loaded reports whether LoadAll completed
func (l *Library) Loaded() bool {
	return l.loaded
}

// Lookup returns the handle for key
func (l *Library) Lookup(key string) (Handle, error) {
	if h, ok := l.byKey[key]; ok {
		return h, nil
	}
	if _, err := l.manifest.Path(key); err != nil {
		return InvalidHandle, err
	}
	return InvalidHandle, fmt.Errorf("asset %q: library not loaded", key)
}

// Resolve looks up keys in order; the result is index-aligned with keys
func (l *Library) Resolve(keys []string) ([]Handle, error) {
	handles := make([]Handle, len(keys))
	for i, key := range keys {
		h, err := l.Lookup(key)
		if err != nil {
			return nil, err
		}
		handles[i] = h
	}
	return handles, nil
}

// Sheet returns the sheet behind h, nil if h was not issued by l
func (l *Library) Sheet(h Handle) *Sheet {
	if h < 0 || int(h) >= len(l.sheets) {
		return nil
	}
	return l.sheets[h]
}

// Len returns the number of loaded sheets
func (l *Library) Len() int {
	return len(l.sheets)
}
