package asset

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownKey    = errors.New("asset: unknown key")
	ErrEmptyManifest = errors.New("asset: manifest has no fonts")
)

// Manifest maps asset keys to tileset files
type Manifest struct {
	Fonts map[string]string `toml:"fonts"`
}

// ParseManifest decodes manifest TOML
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode manifest: unknown field %q", undecoded[0].String())
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads a manifest file; empty path yields DefaultManifest
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return ParseManifest([]byte(DefaultManifest))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

func (m *Manifest) validate() error {
	if len(m.Fonts) == 0 {
		return ErrEmptyManifest
	}
	for key, path := range m.Fonts {
		if path == "" {
			return fmt.Errorf("manifest key %q: empty path", key)
		}
	}
	return nil
}

// Keys returns manifest keys in byte order
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Fonts))
	for k := range m.Fonts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the file for key, or an ErrUnknownKey carrying the closest known key
func (m *Manifest) Path(key string) (string, error) {
	if p, ok := m.Fonts[key]; ok {
		return p, nil
	}
	if hint := m.closest(key); hint != "" {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKey, key, hint)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// closest returns the nearest key within a third of the key length
func (m *Manifest) closest(key string) string {
	best, bestDist := "", len(key)/3+1
	for _, k := range m.Keys() {
		if d := levenshtein.ComputeDistance(key, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
