// Package style provides chart colors, color palettes, and themes. Themes
// can be constructed in code or loaded from TOML/YAML files.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor indicates a malformed hex color string.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit-per-channel RGBA color value.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB creates a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	if len(h) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Luminance returns the perceived brightness in [0, 1] using the
// ITU-R BT.601 weights. Themes use it to pick readable text colors.
func (c Color) Luminance() float32 {
	return (0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)) / 255
}

// Lerp blends toward other by t in [0, 1]; used for color animation and
// gradient fills.
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	blend := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return Color{
		R: blend(c.R, other.R),
		G: blend(c.G, other.G),
		B: blend(c.B, other.B),
		A: blend(c.A, other.A),
	}
}

// RGBA implements the standard library [color.Color] interface, so a
// Color can be handed directly to image drawing code.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns the color as a non-premultiplied standard library value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Basic colors.
var (
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
	Transparent = RGBA(0, 0, 0, 0)
)
