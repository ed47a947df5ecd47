package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fontview/asset"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = ink)
var QuadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Options configures the logical grid
type Options struct {
	Cols, Rows int
	Foreground Color
	Background Color
	Mode       Mode
}

// DefaultOptions matches the classic 80x50 preview terminal
func DefaultOptions() Options {
	return Options{
		Cols:       80,
		Rows:       50,
		Foreground: ColorWhite,
		Background: ColorBlack,
	}
}

type cell struct {
	r  rune
	fg Color
}

// Terminal is a Surface drawn on a tcell screen
// Each logical cell is the active glyph sampled 2x2 pixels per screen cell
type Terminal struct {
	screen tcell.Screen
	sheets SheetSource
	opts   Options

	active *asset.Sheet
	grid   []cell
	shown  Mode // resolved mode of the last Show

	stopOnce sync.Once
}

// NewTerminal wraps screen; the screen is initialized by Init
func NewTerminal(screen tcell.Screen, sheets SheetSource, opts Options) *Terminal {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		def := DefaultOptions()
		opts.Cols, opts.Rows = def.Cols, def.Rows
	}
	t := &Terminal{
		screen: screen,
		sheets: sheets,
		opts:   opts,
		grid:   make([]cell, opts.Cols*opts.Rows),
	}
	t.Clear()
	return t
}

// Name implements service.Service
func (t *Terminal) Name() string {
	return "display"
}

// Init enters the screen
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Start hides the cursor and blanks the screen
func (t *Terminal) Start() error {
	t.screen.HideCursor()
	t.screen.Fill(' ', t.baseStyle())
	t.screen.Show()
	return nil
}

// Stop restores the terminal; safe to call more than once
func (t *Terminal) Stop() error {
	t.stopOnce.Do(t.screen.Fini)
	return nil
}

// Screen exposes the underlying screen for event polling
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Sync forces a full repaint after a resize
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Grid returns logical grid dimensions
func (t *Terminal) Grid() (cols, rows int) {
	return t.opts.Cols, t.opts.Rows
}

func (t *Terminal) Clear() {
	for i := range t.grid {
		t.grid[i] = cell{r: ' ', fg: t.opts.Foreground}
	}
}

func (t *Terminal) SetActiveFont(h asset.Handle) {
	t.active = t.sheets.Sheet(h)
}

// DrawText writes runes left to right; cells outside the grid are dropped
func (t *Terminal) DrawText(p Point, text string, c *Color) {
	if p.Y < 0 || p.Y >= t.opts.Rows {
		return
	}
	fg := t.opts.Foreground
	if c != nil {
		fg = *c
	}
	x := p.X
	for _, r := range text {
		if x >= t.opts.Cols {
			return
		}
		if x >= 0 {
			t.grid[p.Y*t.opts.Cols+x] = cell{r: r, fg: fg}
		}
		x++
	}
}

// Show rasterizes the grid through the active sheet
// Without an active sheet the builtin sheet is used
// In ModeAuto the inked extent of the grid decides: glyphs when it fits the screen, text otherwise
func (t *Terminal) Show() {
	sheet := t.active
	if sheet == nil {
		sheet = asset.Builtin()
	}
	gw, gh := sheet.CellSize()
	cw, ch := (gw+1)/2, (gh+1)/2

	base := t.baseStyle()
	t.screen.Fill(' ', base)
	sw, sh := t.screen.Size()

	mode := t.opts.Mode
	if mode == ModeAuto {
		cols, rows := t.extent()
		mode = ModeGlyph
		if cols*cw > sw || rows*ch > sh {
			mode = ModeText
		}
	}
	t.shown = mode

	if mode == ModeText {
		t.drawText(sw, sh, base)
		t.screen.Show()
		return
	}

	for cy := 0; cy < t.opts.Rows && cy*ch < sh; cy++ {
		for cx := 0; cx < t.opts.Cols && cx*cw < sw; cx++ {
			c := t.grid[cy*t.opts.Cols+cx]
			if c.r == ' ' {
				continue
			}
			style := base.Foreground(toTcell(c.fg))
			t.drawGlyph(cx*cw, cy*ch, cw, ch, sheet.Glyph(c.r), style)
		}
	}
	t.screen.Show()
}

// ShownMode reports how the last Show reached the screen
func (t *Terminal) ShownMode() Mode {
	return t.shown
}

// extent returns the size of the smallest top-left aligned box holding every inked cell
func (t *Terminal) extent() (cols, rows int) {
	for cy := 0; cy < t.opts.Rows; cy++ {
		for cx := 0; cx < t.opts.Cols; cx++ {
			if t.grid[cy*t.opts.Cols+cx].r != ' ' {
				cols = max(cols, cx+1)
				rows = cy + 1
			}
		}
	}
	return cols, rows
}

func (t *Terminal) drawText(sw, sh int, base tcell.Style) {
	for cy := 0; cy < t.opts.Rows && cy < sh; cy++ {
		for cx := 0; cx < t.opts.Cols && cx < sw; cx++ {
			c := t.grid[cy*t.opts.Cols+cx]
			if c.r == ' ' {
				continue
			}
			t.screen.SetContent(cx, cy, c.r, nil, base.Foreground(toTcell(c.fg)))
		}
	}
}

func (t *Terminal) drawGlyph(ox, oy, cw, ch int, g asset.Glyph, style tcell.Style) {
	for qy := 0; qy < ch; qy++ {
		for qx := 0; qx < cw; qx++ {
			px, py := qx*2, qy*2
			var bits int
			if g.At(px, py) {
				bits |= 1
			}
			if g.At(px+1, py) {
				bits |= 2
			}
			if g.At(px, py+1) {
				bits |= 4
			}
			if g.At(px+1, py+1) {
				bits |= 8
			}
			if bits == 0 {
				continue
			}
			t.screen.SetContent(ox+qx, oy+qy, QuadrantChars[bits], nil, style)
		}
	}
}

func (t *Terminal) baseStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(t.opts.Foreground)).
		Background(toTcell(t.opts.Background))
}

func toTcell(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
