package style

import (
	"errors"
	"fmt"
)

// PaletteCapacity is the fixed number of colors a palette can hold.
const PaletteCapacity = 16

// ErrPaletteFull indicates a palette at capacity.
var ErrPaletteFull = errors.New("palette full")

// Palette is a bounded, cycling sequence of series colors. Charts take
// the next color for each series they draw and wrap around when the
// palette is exhausted.
type Palette struct {
	colors []Color
	next   int
}

// NewPalette creates a palette from the given colors. More than
// [PaletteCapacity] colors fail with ErrPaletteFull.
func NewPalette(colors ...Color) (*Palette, error) {
	if len(colors) > PaletteCapacity {
		return nil, fmt.Errorf("%w: %d colors exceed capacity %d", ErrPaletteFull, len(colors), PaletteCapacity)
	}
	p := &Palette{colors: make([]Color, 0, PaletteCapacity)}
	p.colors = append(p.colors, colors...)
	return p, nil
}

// Add appends a color, failing at capacity.
func (p *Palette) Add(c Color) error {
	if len(p.colors) == cap(p.colors) {
		return fmt.Errorf("%w: capacity %d", ErrPaletteFull, cap(p.colors))
	}
	p.colors = append(p.colors, c)
	return nil
}

// Next returns the next color in the cycle, wrapping at the end.
// An empty palette returns Black.
func (p *Palette) Next() Color {
	if len(p.colors) == 0 {
		return Black
	}
	c := p.colors[p.next]
	p.next = (p.next + 1) % len(p.colors)
	return c
}

// Get returns the color at index i modulo the palette size.
func (p *Palette) Get(i int) Color {
	if len(p.colors) == 0 {
		return Black
	}
	if i < 0 {
		i = -i
	}
	return p.colors[i%len(p.colors)]
}

// Len returns the number of stored colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Reset rewinds the cycle to the first color.
func (p *Palette) Reset() {
	p.next = 0
}

// DefaultPalette returns the standard eight-color series palette.
func DefaultPalette() *Palette {
	p, _ := NewPalette(
		RGB(59, 130, 246),  // modern blue
		RGB(239, 68, 68),   // modern red
		RGB(34, 197, 94),   // emerald green
		RGB(245, 158, 11),  // amber
		RGB(147, 51, 234),  // purple
		RGB(6, 182, 212),   // cyan
		RGB(251, 113, 133), // rose
		RGB(168, 85, 247),  // violet
	)
	return p
}

// ProfessionalPalette returns muted colors for business dashboards.
func ProfessionalPalette() *Palette {
	p, _ := NewPalette(
		RGB(30, 58, 138),  // navy blue
		RGB(185, 28, 28),  // dark red
		RGB(21, 128, 61),  // forest green
		RGB(217, 119, 6),  // orange
		RGB(88, 28, 135),  // indigo
		RGB(14, 116, 144), // teal
		RGB(120, 53, 15),  // brown
		RGB(75, 85, 99),   // slate gray
	)
	return p
}

// PastelPalette returns soft colors for low-contrast displays.
func PastelPalette() *Palette {
	p, _ := NewPalette(
		RGB(147, 197, 253), // sky blue
		RGB(252, 165, 165), // light pink
		RGB(167, 243, 208), // mint green
		RGB(254, 215, 170), // peach
		RGB(196, 181, 253), // lavender
		RGB(165, 243, 252), // light cyan
		RGB(254, 202, 202), // light coral
		RGB(253, 230, 138), // light yellow
	)
	return p
}

// VibrantPalette returns saturated colors for high-visibility charts.
func VibrantPalette() *Palette {
	p, _ := NewPalette(
		RGB(236, 72, 153),  // hot pink
		RGB(14, 165, 233),  // sky blue
		RGB(16, 185, 129),  // teal green
		RGB(245, 101, 101), // coral
		RGB(168, 85, 247),  // electric purple
		RGB(251, 191, 36),  // bright yellow
		RGB(220, 38, 127),  // deep pink
		RGB(6, 182, 212),   // bright cyan
	)
	return p
}
