package display

import "github.com/lixenwraith/fontview/asset"

// Op identifies a recorded Surface call
type Op uint8

const (
	OpClear Op = iota
	OpSetActiveFont
	OpDrawText
	OpShow
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "Clear"
	case OpSetActiveFont:
		return "SetActiveFont"
	case OpDrawText:
		return "DrawText"
	case OpShow:
		return "Show"
	default:
		return "Unknown"
	}
}

// Call is one recorded Surface invocation
type Call struct {
	Op     Op
	Handle asset.Handle
	At     Point
	Text   string
	Color  *Color
}

// Recorder is a Surface that stores calls instead of drawing
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) SetActiveFont(h asset.Handle) {
	r.Calls = append(r.Calls, Call{Op: OpSetActiveFont, Handle: h})
}

func (r *Recorder) DrawText(p Point, text string, c *Color) {
	var cp *Color
	if c != nil {
		v := *c
		cp = &v
	}
	r.Calls = append(r.Calls, Call{Op: OpDrawText, At: p, Text: text, Color: cp})
}

func (r *Recorder) Show() {
	r.Calls = append(r.Calls, Call{Op: OpShow})
}

// Count returns the number of calls with op
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops every recorded call
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
