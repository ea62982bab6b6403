package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses the CSS color subset the catalog uses: #RGB, #RRGGBB,
// #RRGGBBAA, rgb(r,g,b) and rgba(r,g,b,a).
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(strings.ToLower(s), "rgba("), strings.HasPrefix(strings.ToLower(s), "rgb("):
		return parseRGBFunc(s)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", s)
}

// IsColor reports whether s parses as a supported CSS color.
func IsColor(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

func parseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	var rr, gg, bb, aa string
	switch len(hex) {
	case 3:
		rr, gg, bb = strings.Repeat(hex[0:1], 2), strings.Repeat(hex[1:2], 2), strings.Repeat(hex[2:3], 2)
		aa = "FF"
	case 6:
		rr, gg, bb, aa = hex[0:2], hex[2:4], hex[4:6], "FF"
	case 8:
		rr, gg, bb, aa = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	channels := [4]uint8{}
	for i, part := range []string{rr, gg, bb, aa} {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		channels[i] = uint8(v)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func parseRGBFunc(s string) (color.NRGBA, error) {
	open := strings.Index(s, "(")
	close := strings.LastIndex(s, ")")
	if open < 0 || close < open {
		return color.NRGBA{}, fmt.Errorf("invalid rgb() color %q", s)
	}

	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid rgb() color %q", s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid rgb() channel in %q", s)
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q", s)
		}
		alpha = uint8(a*255 + 0.5)
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// Opaque strips the alpha channel; bitmap export backgrounds must be fully
// opaque or JPEG output shows black holes.
func Opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}
