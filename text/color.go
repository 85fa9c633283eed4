package text

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB text color.
type Color struct {
	R, G, B uint8
}

// The classic named palette. Kept in declaration order for NearestNamed and
// Named(); the names match the historic formatting names.
var (
	Black       = Color{0x00, 0x00, 0x00}
	DarkBlue    = Color{0x00, 0x00, 0xaa}
	DarkGreen   = Color{0x00, 0xaa, 0x00}
	DarkAqua    = Color{0x00, 0xaa, 0xaa}
	DarkRed     = Color{0xaa, 0x00, 0x00}
	DarkPurple  = Color{0xaa, 0x00, 0xaa}
	Gold        = Color{0xff, 0xaa, 0x00}
	Gray        = Color{0xaa, 0xaa, 0xaa}
	DarkGray    = Color{0x55, 0x55, 0x55}
	Blue        = Color{0x55, 0x55, 0xff}
	Green       = Color{0x55, 0xff, 0x55}
	Aqua        = Color{0x55, 0xff, 0xff}
	Red         = Color{0xff, 0x55, 0x55}
	LightPurple = Color{0xff, 0x55, 0xff}
	Yellow      = Color{0xff, 0xff, 0x55}
	White       = Color{0xff, 0xff, 0xff}
)

var namedColors = []struct {
	name  string
	color Color
}{
	{"black", Black},
	{"dark_blue", DarkBlue},
	{"dark_green", DarkGreen},
	{"dark_aqua", DarkAqua},
	{"dark_red", DarkRed},
	{"dark_purple", DarkPurple},
	{"gold", Gold},
	{"gray", Gray},
	{"dark_gray", DarkGray},
	{"blue", Blue},
	{"green", Green},
	{"aqua", Aqua},
	{"red", Red},
	{"light_purple", LightPurple},
	{"yellow", Yellow},
	{"white", White},
}

// RGB builds a color from a packed 0xRRGGBB value.
func RGB(value uint32) Color {
	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}
}

// FromHex parses "#rrggbb" (leading '#' optional).
func FromHex(s string) (Color, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("unable to parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Named resolves one of the classic palette names, e.g. "dark_red".
func Named(name string) (Color, bool) {
	for _, n := range namedColors {
		if n.name == name {
			return n.color, true
		}
	}
	return Color{}, false
}

// Value returns the packed 0xRRGGBB representation.
func (c Color) Value() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	if name, ok := c.Name(); ok {
		return name
	}
	return c.Hex()
}

// Name returns the palette name when the color matches a named constant
// exactly.
func (c Color) Name() (string, bool) {
	for _, n := range namedColors {
		if n.color == c {
			return n.name, true
		}
	}
	return "", false
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// NearestNamed returns the palette color perceptually closest to c, using
// CIE-Lab distance. An exact palette match returns that entry.
func NearestNamed(c Color) Color {
	target := c.colorful()
	best := namedColors[0].color
	bestDist := -1.0
	for _, n := range namedColors {
		if n.color == c {
			return n.color
		}
		d := target.DistanceLab(n.color.colorful())
		if bestDist < 0 || d < bestDist {
			best, bestDist = n.color, d
		}
	}
	return best
}

// Lerp interpolates between a and b in RGB space; t is clamped to [0, 1].
func Lerp(t float64, a, b Color) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mixed := a.colorful().BlendRgb(b.colorful(), t)
	r, g, bb := mixed.RGB255()
	return Color{R: r, G: g, B: bb}
}
