// Package render provides a minimal raster target for chart output: an
// RGBA pixel canvas with line, rectangle, circle, polyline and text
// primitives. Chart types draw onto a Canvas; the result can be saved as
// PNG or handed on as a standard library image.
//
// The primitives are integer-only (Bresenham lines, scanline fills) so
// the drawing stage works identically on targets without floating-point
// hardware; all geometry has already been resolved to pixel coordinates
// by the chart layer.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/tphakala/go-microchart/style"
)

// Canvas size limits. The upper bound keeps the pixel buffer within what
// the memory model of small targets can commit to up front.
const (
	MinCanvasSize = 16
	MaxCanvasSize = 4096
)

// ErrInvalidSize indicates canvas dimensions outside the supported range.
var ErrInvalidSize = errors.New("invalid canvas size")

// Canvas is a fixed-size RGBA pixel buffer.
type Canvas struct {
	width  int
	height int
	img    *image.NRGBA
}

// NewCanvas allocates a canvas of the given size. Both dimensions must
// be within [MinCanvasSize, MaxCanvasSize].
func NewCanvas(width, height int) (*Canvas, error) {
	if width < MinCanvasSize || width > MaxCanvasSize ||
		height < MinCanvasSize || height > MaxCanvasSize {
		return nil, fmt.Errorf("%w: %dx%d (supported %d..%d)",
			ErrInvalidSize, width, height, MinCanvasSize, MaxCanvasSize)
	}
	return &Canvas{
		width:  width,
		height: height,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Set writes one pixel. Out-of-bounds coordinates are ignored, so the
// primitives can clip implicitly at the edges.
func (c *Canvas) Set(x, y int, col style.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.img.SetNRGBA(x, y, col.NRGBA())
}

// At reads one pixel. Out-of-bounds coordinates return transparent.
func (c *Canvas) At(x, y int) style.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return style.Transparent
	}
	n := c.img.NRGBAAt(x, y)
	return style.RGBA(n.R, n.G, n.B, n.A)
}

// Clear fills the whole canvas with one color.
func (c *Canvas) Clear(col style.Color) {
	n := col.NRGBA()
	for y := 0; y < c.height; y++ {
		row := c.img.PixOffset(0, y)
		for x := 0; x < c.width; x++ {
			o := row + x*4
			c.img.Pix[o+0] = n.R
			c.img.Pix[o+1] = n.G
			c.img.Pix[o+2] = n.B
			c.img.Pix[o+3] = n.A
		}
	}
}

// Image returns the backing image. The chart owns the canvas; callers
// must copy if they mutate it past the render call.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// SavePNG encodes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
