package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color shared by scene materials and the render buffer
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB literal
func Hex(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Predefined material colors
var (
	RGBNeonCyan = Hex(0x00ffcc)
	RGBWhite    = Hex(0xffffff)
	RGBOcean    = Hex(0x0b2a4a)
)

// ParseHex accepts "#rrggbb", "rrggbb" or "0xrrggbb"
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}
