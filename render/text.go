package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tphakala/go-microchart/style"
)

// face is the fixed 7x13 bitmap face used for all chart text. A bitmap
// face needs no font files or rasterization state, which keeps text
// rendering dependency-free and deterministic across targets.
var face = basicfont.Face7x13

// TextHeight is the pixel height of the chart font.
const TextHeight = 13

// Text draws s with its baseline at (x, y).
func (c *Canvas) Text(x, y int, s string, col style.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextCentered draws s horizontally centered on x with baseline y.
func (c *Canvas) TextCentered(x, y int, s string, col style.Color) {
	c.Text(x-TextWidth(s)/2, y, s, col)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}
