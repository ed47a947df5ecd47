package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/text/encoding/charmap"
)

// Tileset grid: 16 columns by 16 rows, code page 437 order
const (
	SheetColumns = 16
	SheetRows    = 16
	SheetGlyphs  = SheetColumns * SheetRows

	// MaxGlyphWidth is bounded by the row mask width
	MaxGlyphWidth = 32

	fallbackGlyph = '?'
)

var ErrSheetGeometry = errors.New("asset: sheet is not a 16x16 glyph grid")

// Sheet holds the 256 glyphs of one tileset
type Sheet struct {
	cellW, cellH int
	glyphs       [SheetGlyphs]Glyph
}

// DecodeSheet decodes a PNG, GIF or BMP tileset
func DecodeSheet(r io.Reader) (*Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode sheet: %w", err)
	}
	return NewSheet(img)
}

// NewSheet slices img into glyphs
func NewSheet(img image.Image) (*Sheet, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%SheetColumns != 0 || b.Dy()%SheetRows != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSheetGeometry, b.Dx(), b.Dy())
	}

	s := &Sheet{
		cellW: b.Dx() / SheetColumns,
		cellH: b.Dy() / SheetRows,
	}
	if s.cellW > MaxGlyphWidth {
		return nil, fmt.Errorf("%w: glyph width %d exceeds %d", ErrSheetGeometry, s.cellW, MaxGlyphWidth)
	}

	for i := 0; i < SheetGlyphs; i++ {
		ox := b.Min.X + (i%SheetColumns)*s.cellW
		oy := b.Min.Y + (i/SheetColumns)*s.cellH

		g := Glyph{Width: s.cellW, Height: s.cellH, Rows: make([]uint32, s.cellH)}
		for y := 0; y < s.cellH; y++ {
			var row uint32
			for x := 0; x < s.cellW; x++ {
				if pixelOn(img.At(ox+x, oy+y)) {
					row |= 1 << uint(x)
				}
			}
			g.Rows[y] = row
		}
		s.glyphs[i] = g
	}
	return s, nil
}

// pixelOn treats transparent, magenta-keyed and dark pixels as background
func pixelOn(c color.Color) bool {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return false
	}
	if r > 0xF000 && g < 0x1000 && b > 0xF000 {
		return false
	}
	// Rec. 601 luma on 16-bit channels
	luma := (299*r + 587*g + 114*b) / 1000
	return luma >= 0x8000
}

// CellSize returns glyph width and height in pixels
func (s *Sheet) CellSize() (width, height int) {
	return s.cellW, s.cellH
}

// Glyph returns the glyph for r through code page 437
// Runes outside the code page render as '?'
func (s *Sheet) Glyph(r rune) Glyph {
	return s.glyphs[Index(r)]
}

// GlyphAt returns the glyph in tileset slot i
func (s *Sheet) GlyphAt(i byte) Glyph {
	return s.glyphs[i]
}

// cp437Graphics are the glyphs drawn in the control-code slots
// charmap decodes those slots as C0 controls
var cp437Graphics = map[rune]byte{
	'☺': 0x01, '☻': 0x02, '♥': 0x03, '♦': 0x04, '♣': 0x05, '♠': 0x06, '•': 0x07,
	'◘': 0x08, '○': 0x09, '◙': 0x0A, '♂': 0x0B, '♀': 0x0C, '♪': 0x0D, '♫': 0x0E,
	'☼': 0x0F, '►': 0x10, '◄': 0x11, '↕': 0x12, '‼': 0x13, '¶': 0x14, '§': 0x15,
	'▬': 0x16, '↨': 0x17, '↑': 0x18, '↓': 0x19, '→': 0x1A, '←': 0x1B, '∟': 0x1C,
	'↔': 0x1D, '▲': 0x1E, '▼': 0x1F, '⌂': 0x7F,
}

// Index maps a rune to its code page 437 slot
func Index(r rune) byte {
	if b, ok := cp437Graphics[r]; ok {
		return b
	}
	if r < 0x20 || r == 0x7F {
		return fallbackGlyph
	}
	if b, ok := charmap.CodePage437.EncodeRune(r); ok {
		return b
	}
	return fallbackGlyph
}
