package display

import "fmt"

// Mode selects how logical cells reach the screen
type Mode uint8

const (
	// ModeAuto rasterizes glyphs when the drawn text fits the screen, else falls back to ModeText
	ModeAuto Mode = iota
	// ModeGlyph always rasterizes through the active sheet; overflow is clipped
	ModeGlyph
	// ModeText writes one rune per screen cell in the terminal's own font
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeGlyph:
		return "glyph"
	case ModeText:
		return "text"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode accepts the String forms; empty means auto
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "glyph":
		return ModeGlyph, nil
	case "text":
		return ModeText, nil
	}
	return ModeAuto, fmt.Errorf("unknown display mode %q", s)
}
