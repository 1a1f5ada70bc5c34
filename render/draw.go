package render

import (
	"github.com/tphakala/go-microchart/data"
	"github.com/tphakala/go-microchart/style"
)

// Line draws a straight line with Bresenham's algorithm. Endpoints
// outside the canvas are clipped pixel by pixel.
func (c *Canvas) Line(x0, y0, x1, y1 int, col style.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// HLine draws a horizontal line from (x0, y) to (x1, y).
func (c *Canvas) HLine(x0, x1, y int, col style.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.Set(x, y, col)
	}
}

// VLine draws a vertical line from (x, y0) to (x, y1).
func (c *Canvas) VLine(x, y0, y1 int, col style.Color) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Set(x, y, col)
	}
}

// FillRect fills the rectangle with corner (x, y) and the given size.
func (c *Canvas) FillRect(x, y, w, h int, col style.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.Set(xx, yy, col)
		}
	}
}

// StrokeRect outlines the rectangle with corner (x, y) and the given size.
func (c *Canvas) StrokeRect(x, y, w, h int, col style.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.HLine(x, x+w-1, y, col)
	c.HLine(x, x+w-1, y+h-1, col)
	c.VLine(x, y, y+h-1, col)
	c.VLine(x+w-1, y, y+h-1, col)
}

// FillCircle fills a circle by scanning its bounding square; radius 0
// degenerates to a single pixel.
func (c *Canvas) FillCircle(cx, cy, r int, col style.Color) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// Polyline connects consecutive points with lines. Coordinates are
// rounded to the nearest pixel.
func (c *Canvas) Polyline(points []data.Point, col style.Color) {
	for i := 0; i+1 < len(points); i++ {
		c.Line(
			round(points[i].X), round(points[i].Y),
			round(points[i+1].X), round(points[i+1].Y),
			col,
		)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// round converts a pixel-space coordinate to the nearest integer pixel.
func round(v float32) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
