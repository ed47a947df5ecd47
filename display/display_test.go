package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fontview/asset"
)

type sheetMap map[asset.Handle]*asset.Sheet

func (m sheetMap) Sheet(h asset.Handle) *asset.Sheet {
	return m[h]
}

// diagonalSheet has a top-left to bottom-right diagonal in slot 'A'
func diagonalSheet(t *testing.T) *asset.Sheet {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8*asset.SheetColumns, 8*asset.SheetRows))
	slot := int('A')
	ox, oy := (slot%asset.SheetColumns)*8, (slot/asset.SheetColumns)*8
	for i := 0; i < 8; i++ {
		img.Set(ox+i, oy+i, color.White)
	}
	s, err := asset.NewSheet(img)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	return s
}

// inkSheet has every pixel of every w x h glyph on
func inkSheet(t *testing.T, w, h int) *asset.Sheet {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w*asset.SheetColumns, h*asset.SheetRows))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	s, err := asset.NewSheet(img)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	return s
}

func rowText(s tcell.Screen, y, n int) string {
	runes := make([]rune, n)
	for x := range runes {
		runes[x] = runeAt(s, x, y)
	}
	return string(runes)
}

func newTestTerminal(t *testing.T, opts Options) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminal(screen, sheetMap{1: diagonalSheet(t)}, opts)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { term.Stop() })
	screen.SetSize(40, 20)
	return term, screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestTerminalRasterizesActiveGlyph(t *testing.T) {
	term, screen := newTestTerminal(t, Options{Cols: 10, Rows: 5, Foreground: ColorWhite, Background: ColorBlack})

	term.Clear()
	term.SetActiveFont(1)
	term.DrawText(Point{X: 1, Y: 0}, "A", nil)
	term.Show()

	// 8x8 glyph occupies 4x4 screen cells; logical x=1 starts at screen x=4
	for i := 0; i < 4; i++ {
		if got := runeAt(screen, 4+i, i); got != '▚' {
			t.Errorf("cell (%d,%d) = %q, want '▚'", 4+i, i, got)
		}
	}
	if got := runeAt(screen, 5, 0); got != ' ' {
		t.Errorf("off-diagonal cell = %q, want blank", got)
	}
	if got := runeAt(screen, 0, 0); got != ' ' {
		t.Errorf("logical cell 0 = %q, want blank", got)
	}
}

func TestTerminalFallsBackToTextWhenFrameOverflows(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminal(screen, sheetMap{2: inkSheet(t, 12, 12)}, DefaultOptions())
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { term.Stop() })
	screen.SetSize(80, 25)

	name := "Font Name: Cheepicus"
	chart := "☺☻♥♦♣♠"
	term.SetActiveFont(2)
	term.DrawText(Point{X: 0, Y: 3}, name, nil)
	term.DrawText(Point{X: 0, Y: 7}, chart, nil)
	term.Show()

	if term.ShownMode() != ModeText {
		t.Fatalf("shown mode %s, want text", term.ShownMode())
	}
	if got := rowText(screen, 3, len([]rune(name))); got != name {
		t.Errorf("row 3 = %q, want %q", got, name)
	}
	if got := rowText(screen, 7, len([]rune(chart))); got != chart {
		t.Errorf("row 7 = %q, want %q", got, chart)
	}

	// Resize large enough for the glyph footprint: 20x8 logical cells at 6x6 each
	screen.SetSize(120, 48)
	term.Show()
	if term.ShownMode() != ModeGlyph {
		t.Errorf("shown mode %s after resize, want glyph", term.ShownMode())
	}
	if got := runeAt(screen, 119, 18); got != '█' {
		t.Errorf("last name cell = %q, want full block", got)
	}
}

func TestTerminalForcedModes(t *testing.T) {
	opts := DefaultOptions()

	opts.Mode = ModeGlyph
	term, screen := newTestTerminal(t, opts)
	term.SetActiveFont(1)
	term.DrawText(Point{}, "AAAAAAAAAAAAAAAAAAAA", nil)
	term.Show()
	if term.ShownMode() != ModeGlyph {
		t.Errorf("forced glyph shown as %s", term.ShownMode())
	}
	if got := runeAt(screen, 0, 0); got != '▚' {
		t.Errorf("cell (0,0) = %q, want '▚'", got)
	}

	opts.Mode = ModeText
	term, screen = newTestTerminal(t, opts)
	term.SetActiveFont(1)
	term.DrawText(Point{X: 2, Y: 1}, "A", nil)
	term.Show()
	if term.ShownMode() != ModeText || runeAt(screen, 2, 1) != 'A' {
		t.Errorf("forced text: mode %s, cell %q", term.ShownMode(), runeAt(screen, 2, 1))
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeAuto, ModeGlyph, ModeText} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("braille"); err == nil {
		t.Error("ParseMode accepted braille")
	}
}

func TestTerminalColour(t *testing.T) {
	term, screen := newTestTerminal(t, DefaultOptions())

	green := ColorGreen
	term.SetActiveFont(1)
	term.DrawText(Point{}, "A", &green)
	term.Show()

	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("foreground = %v, want green", fg)
	}
}

func TestTerminalClipping(t *testing.T) {
	term, _ := newTestTerminal(t, Options{Cols: 3, Rows: 2})

	// None of these may panic
	term.DrawText(Point{X: -2, Y: 0}, "AAAAAA", nil)
	term.DrawText(Point{X: 0, Y: 5}, "A", nil)
	term.DrawText(Point{X: 0, Y: -1}, "A", nil)
	term.SetActiveFont(1)
	term.Show()

	for x := 0; x < 3; x++ {
		if term.grid[x].r != 'A' {
			t.Errorf("grid[%d] = %q, want 'A'", x, term.grid[x].r)
		}
	}
	if term.grid[3].r != ' ' {
		t.Errorf("row 1 written: %q", term.grid[3].r)
	}
}

func TestTerminalClearResetsGrid(t *testing.T) {
	term, _ := newTestTerminal(t, Options{Cols: 4, Rows: 1})
	term.DrawText(Point{}, "AAAA", nil)
	term.Clear()
	for i, c := range term.grid {
		if c.r != ' ' {
			t.Errorf("grid[%d] = %q after Clear", i, c.r)
		}
	}
}

func TestTerminalUnknownHandleUsesBuiltin(t *testing.T) {
	term, screen := newTestTerminal(t, Options{Cols: 4, Rows: 1})
	term.SetActiveFont(asset.Handle(42))
	term.DrawText(Point{}, "A", nil)
	term.Show()

	// Builtin 7x13 glyph spans 4x7 screen cells; some of them carry ink
	inked := false
	for y := 0; y < 7; y++ {
		for x := 0; x < 4; x++ {
			if runeAt(screen, x, y) != ' ' {
				inked = true
			}
		}
	}
	if !inked {
		t.Error("builtin glyph drew nothing")
	}
}

func TestTerminalStopIdempotent(t *testing.T) {
	term, _ := newTestTerminal(t, DefaultOptions())
	if err := term.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := term.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	c := ColorGreen
	r.Clear()
	r.SetActiveFont(3)
	r.DrawText(Point{X: 1, Y: 2}, "hi", &c)
	c.R = 9
	r.Show()

	if len(r.Calls) != 4 || r.Count(OpDrawText) != 1 {
		t.Fatalf("unexpected calls: %+v", r.Calls)
	}
	if r.Calls[2].Color.R != 0 {
		t.Error("Recorder aliased caller colour")
	}
	r.Reset()
	if len(r.Calls) != 0 {
		t.Error("Reset kept calls")
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]Color{
		"#ff8000": {255, 128, 0},
		"00ff00":  ColorGreen,
		"White":   ColorWhite,
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %v, %v", in, got, err)
		}
	}
	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) accepted", bad)
		}
	}
	if ColorGreen.String() != "#00ff00" {
		t.Errorf("String() = %q", ColorGreen.String())
	}
}
