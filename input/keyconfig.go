package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Bindings is the config form: action name -> key names
// A listed action replaces all of its default keys; unlisted actions keep theirs
type Bindings map[string][]string

// BuildKeyTable applies bindings over DefaultKeyTable
// Returns error on unknown action names or key names
func BuildKeyTable(b Bindings) (*KeyTable, error) {
	kt := DefaultKeyTable()
	for name, keys := range b {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown action: %q", name)
		}
		if len(keys) == 0 {
			continue
		}
		kt.Unbind(action)

		override := &KeyTable{Keys: map[tcell.Key]Action{}, Runes: map[rune]Action{}}
		for _, k := range keys {
			key, r, err := resolveKey(k)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
			if key == tcell.KeyRune {
				override.Runes[r] = action
			} else {
				override.Keys[key] = action
			}
		}
		kt = MergeKeyTable(kt, override)
	}
	return kt, nil
}

// resolveKey converts a config key name to a special key or a rune
// Accepts special key names, rune aliases and single characters
func resolveKey(s string) (tcell.Key, rune, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := nameToKey[name]; ok {
		return k, 0, nil
	}
	if r, ok := runeAliases[name]; ok {
		return tcell.KeyRune, r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return tcell.KeyRune, runes[0], nil
	}

	return tcell.KeyNUL, 0, fmt.Errorf("invalid key: %q (expected key name or single character)", s)
}
