package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/fontview/catalog"
	"github.com/lixenwraith/fontview/display"
)

// Sample text drawn on every preview frame
const (
	InstructionsText = "Press [SPACEBAR]/[BACKSPACE] to page through fonts"
	SymbolChart      = "☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼"
	BoxChart         = "░▒▓│┤╡╢╖╕╣║╗╝╜╛┐└╒╓╫╪┘┌█▄▌▐▀αßΓπΣσµτΦΘΩδ∞"
	MarkerGlyph      = "☺"
)

// asciiChart is printable ASCII split in two rows that fit 80 columns
var asciiChart = func() [2]string {
	var b strings.Builder
	for r := rune(0x20); r < 0x7F; r++ {
		b.WriteRune(r)
	}
	s := b.String()
	return [2]string{s[:48], s[48:]}
}()

// DrawCall is one DrawText command
type DrawCall struct {
	At    display.Point
	Text  string
	Color *display.Color
}

// Frame lays out the preview of entry d at catalog index
// Identical arguments always yield identical calls
func Frame(d catalog.Descriptor, index int) []DrawCall {
	green := display.ColorGreen
	return []DrawCall{
		{At: display.Point{X: 0, Y: 1}, Text: InstructionsText},
		{At: display.Point{X: 0, Y: 2}, Text: fmt.Sprintf("CurrentFont is %d", index)},
		{At: display.Point{X: 0, Y: 3}, Text: "Font Name: " + d.Name},
		{At: display.Point{X: 0, Y: 4}, Text: "Glyph Size: " + d.Size.String()},
		{At: display.Point{X: 5, Y: 5}, Text: MarkerGlyph, Color: &green},
		{At: display.Point{X: 0, Y: 7}, Text: SymbolChart},
		{At: display.Point{X: 0, Y: 9}, Text: BoxChart},
		{At: display.Point{X: 0, Y: 11}, Text: asciiChart[0]},
		{At: display.Point{X: 0, Y: 12}, Text: asciiChart[1]},
	}
}
