package asset

// Glyph is a monochrome bitmap stored as one mask per row
// Bit x of Rows[y] is pixel (x, y), bit 0 is the leftmost column
type Glyph struct {
	Width, Height int
	Rows          []uint32
}

// At reports whether pixel (x, y) is set; out of bounds is unset
func (g Glyph) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	return g.Rows[y]&(1<<uint(x)) != 0
}

// Empty reports whether no pixel is set
func (g Glyph) Empty() bool {
	for _, r := range g.Rows {
		if r != 0 {
			return false
		}
	}
	return true
}
