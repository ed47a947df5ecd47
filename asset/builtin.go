package asset

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

var (
	builtinOnce  sync.Once
	builtinSheet *Sheet
)

// Builtin returns a 7x13 sheet rasterized from basicfont
// Slots whose rune basicfont lacks stay blank
func Builtin() *Sheet {
	builtinOnce.Do(func() {
		builtinSheet = rasterizeBuiltin()
	})
	return builtinSheet
}

func rasterizeBuiltin() *Sheet {
	face := basicfont.Face7x13
	cw, ch := face.Advance, face.Height
	img := image.NewAlpha(image.Rect(0, 0, cw*SheetColumns, ch*SheetRows))

	slotRunes := make(map[byte]rune, len(cp437Graphics))
	for r, b := range cp437Graphics {
		slotRunes[b] = r
	}

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := 0; i < SheetGlyphs; i++ {
		r, ok := slotRunes[byte(i)]
		if !ok {
			r = charmap.CodePage437.DecodeByte(byte(i))
		}
		if r < 0x20 {
			continue
		}
		d.Dot = fixed.P((i%SheetColumns)*cw, (i/SheetColumns)*ch+face.Ascent)
		d.DrawString(string(r))
	}

	s, err := NewSheet(img)
	if err != nil {
		// Geometry is fixed by construction
		panic(err)
	}
	return s
}
