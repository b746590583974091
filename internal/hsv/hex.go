package hsv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses "#RGB", "#RRGGBB" or "#AARRGGBB". The leading '#' is
// optional. The 3 and 6 digit forms produce opaque colors.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = "FF" + b.String()
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q has %d digits, want 3, 6 or 8", ErrInvalidHex, s, len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return FromARGB(uint32(v)), nil
}
