// Package display draws preview frames.
//
// Surface is the command contract used by the evaluation step: clear, select the
// active font, place text, present. Terminal implements it on a tcell screen by
// rasterizing every logical cell through the active bitmap font; Recorder keeps the
// calls in memory.
package display

import "github.com/lixenwraith/fontview/asset"

// Point is a logical cell position, origin top-left
type Point struct {
	X, Y int
}

// Color is a 24-bit colour
type Color struct {
	R, G, B uint8
}

var (
	ColorWhite = Color{255, 255, 255}
	ColorBlack = Color{0, 0, 0}
	ColorGreen = Color{0, 255, 0}
	ColorGrey  = Color{128, 128, 128}
)

// Surface receives the commands of one evaluation
type Surface interface {
	// Clear blanks the logical grid
	Clear()

	// SetActiveFont selects the sheet used for every subsequent draw
	SetActiveFont(h asset.Handle)

	// DrawText places text starting at p; nil c uses the surface foreground
	DrawText(p Point, text string, c *Color)

	// Show presents the grid
	Show()
}

// SheetSource resolves handles to sheets
type SheetSource interface {
	Sheet(h asset.Handle) *asset.Sheet
}
