package display

import (
	"fmt"
	"strconv"
	"strings"
)

var namedColors = map[string]Color{
	"white": ColorWhite,
	"black": ColorBlack,
	"green": ColorGreen,
	"grey":  ColorGrey,
	"gray":  ColorGrey,
}

// ParseColor accepts "#rrggbb", "rrggbb" or a colour name
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
