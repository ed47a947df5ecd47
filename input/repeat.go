package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// RepeatFilter drops terminal auto-repeat
// tcell reports no key release, so a held key looks like the same key arriving again and again;
// an identical key within Window of the previous one is a repeat. Window <= 0 accepts everything
type RepeatFilter struct {
	Window time.Duration

	last    keyID
	lastAt  time.Time
	primed  bool
	dropped int
}

type keyID struct {
	key tcell.Key
	r   rune
	mod tcell.ModMask
}

// Accept reports whether ev is a fresh press
func (f *RepeatFilter) Accept(ev *tcell.EventKey) bool {
	return f.accept(keyID{key: ev.Key(), r: ev.Rune(), mod: ev.Modifiers()}, ev.When())
}

func (f *RepeatFilter) accept(id keyID, at time.Time) bool {
	repeat := f.Window > 0 && f.primed && id == f.last && at.Sub(f.lastAt) < f.Window
	// Held keys keep extending the window
	f.last, f.lastAt, f.primed = id, at, true
	if repeat {
		f.dropped++
	}
	return !repeat
}

// Dropped returns how many repeats were discarded
func (f *RepeatFilter) Dropped() int {
	return f.dropped
}
