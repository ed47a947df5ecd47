package catalog

import (
	"fmt"
	"strings"
)

// GlyphSize is the nominal cell class of a tileset
// Informational only, never used for layout
type GlyphSize uint8

const (
	SizeUnknown GlyphSize = iota
	Size5x5
	Size6x6
	Size7x7
	Size8x8
	Size9x9
	Size10x10
	Size11x11
	Size12x12
	Size13x13
	Size14x14
	Size15x15
	Size6x8
	Size7x12
	Size8x12
	Size8x14
	Size8x16
	Size10x16
	Size12x16
)

var glyphSizeDims = [...][2]int{
	SizeUnknown: {0, 0},
	Size5x5:     {5, 5},
	Size6x6:     {6, 6},
	Size7x7:     {7, 7},
	Size8x8:     {8, 8},
	Size9x9:     {9, 9},
	Size10x10:   {10, 10},
	Size11x11:   {11, 11},
	Size12x12:   {12, 12},
	Size13x13:   {13, 13},
	Size14x14:   {14, 14},
	Size15x15:   {15, 15},
	Size6x8:     {6, 8},
	Size7x12:    {7, 12},
	Size8x12:    {8, 12},
	Size8x14:    {8, 14},
	Size8x16:    {8, 16},
	Size10x16:   {10, 16},
	Size12x16:   {12, 16},
}

// Dims returns width and height in pixels, zero for SizeUnknown
func (s GlyphSize) Dims() (width, height int) {
	if int(s) >= len(glyphSizeDims) {
		return 0, 0
	}
	d := glyphSizeDims[s]
	return d[0], d[1]
}

func (s GlyphSize) String() string {
	w, h := s.Dims()
	if w == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", w, h)
}

// ParseGlyphSize reads the "WxH" form produced by String
func ParseGlyphSize(s string) (GlyphSize, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i := Size5x5; int(i) < len(glyphSizeDims); i++ {
		if i.String() == norm {
			return i, nil
		}
	}
	return SizeUnknown, fmt.Errorf("unknown glyph size %q", s)
}
