package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (function keys, arrows, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
// Space pages forward, Backspace pages back, F5 redraws
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyBackspace2: ActionPrevious,
			tcell.KeyF5:         ActionRefresh,
			tcell.KeyEscape:     ActionQuit,
			tcell.KeyCtrlC:      ActionQuit,
			tcell.KeyCtrlQ:      ActionQuit,
		},
		Runes: map[rune]Action{
			' ': ActionNext,
			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}

// Lookup returns the action bound to ev, ActionNone if unbound
// Both backspace encodings resolve to the same binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	key := ev.Key()
	if key == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	if key == tcell.KeyBackspace {
		key = tcell.KeyBackspace2
	}
	return kt.Keys[key]
}

// MergeKeyTable returns base with override applied
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
			continue
		}
		result.Keys[k] = v
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
			continue
		}
		result.Runes[r] = v
	}
	return result
}

// Unbind removes every binding of action a
func (kt *KeyTable) Unbind(a Action) {
	for k, v := range kt.Keys {
		if v == a {
			delete(kt.Keys, k)
		}
	}
	for r, v := range kt.Runes {
		if v == a {
			delete(kt.Runes, r)
		}
	}
}
