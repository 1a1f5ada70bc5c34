package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBounds_RejectsInverted(t *testing.T) {
	_, err := NewBounds(1, 0, 0, 1)
	require.ErrorIs(t, err, ErrInvalidBounds)

	_, err = NewBounds(0, 1, 5, -5)
	require.ErrorIs(t, err, ErrInvalidBounds)

	b, err := NewBounds(-1, 1, -2, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(2), b.Width())
	assert.Equal(t, float32(4), b.Height())
}

func TestBounds_ContainsAndExpand(t *testing.T) {
	b, err := NewBounds(0, 10, 0, 10)
	require.NoError(t, err)

	assert.True(t, b.Contains(Pt(5, 5)))
	assert.True(t, b.Contains(Pt(0, 10)), "edges are inside")
	assert.False(t, b.Contains(Pt(-0.1, 5)))

	expanded := b.ExpandToInclude(Pt(-3, 15))
	assert.Equal(t, float32(-3), expanded.MinX)
	assert.Equal(t, float32(15), expanded.MaxY)
	assert.Equal(t, float32(10), expanded.MaxX, "unaffected edge keeps its value")
}

func TestBounds_Merge(t *testing.T) {
	a := Bounds{MinX: 0, MaxX: 5, MinY: 0, MaxY: 5}
	b := Bounds{MinX: -2, MaxX: 3, MinY: 2, MaxY: 8}

	m := a.Merge(b)
	assert.Equal(t, Bounds{MinX: -2, MaxX: 5, MinY: 0, MaxY: 8}, m)
}

func TestBounds_WithPadding(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 20}
	p := b.WithPadding(10)

	assert.InDelta(t, -1.0, p.MinX, 1e-6)
	assert.InDelta(t, 11.0, p.MaxX, 1e-6)
	assert.InDelta(t, -2.0, p.MinY, 1e-6)
	assert.InDelta(t, 22.0, p.MaxY, 1e-6)
}

func TestNiceNumber(t *testing.T) {
	tests := []struct {
		value float32
		round bool
		want  float32
	}{
		{1.0, false, 1},
		{1.2, false, 2},
		{3.7, false, 5},
		{8.0, false, 10},
		{42, false, 50},
		{0.7, false, 1},
		{1.4, true, 1},
		{2.2, true, 2},
		{6.5, true, 5},
		{8.0, true, 10},
		{0, false, 0},
	}

	for _, tt := range tests {
		got := NiceNumber(tt.value, tt.round)
		// The fallback backend's log10/pow are approximate; the chosen
		// nice number must still land on the expected candidate.
		assert.InDelta(t, tt.want, got, float64(tt.want)*0.02,
			"NiceNumber(%g, %v)", tt.value, tt.round)
	}
}

func TestCalculateBounds(t *testing.T) {
	_, err := CalculateBounds(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	b, err := CalculateBounds([]Point{{1, 2}, {-3, 8}, {5, -1}})
	require.NoError(t, err)
	assert.Equal(t, Bounds{MinX: -3, MaxX: 5, MinY: -1, MaxY: 8}, b)
}

func TestCalculateMultiBounds(t *testing.T) {
	_, err := CalculateMultiBounds(nil, []Point{})
	require.ErrorIs(t, err, ErrInsufficientData)

	b, err := CalculateMultiBounds(
		[]Point{{0, 0}, {1, 1}},
		nil,
		[]Point{{-5, 2}, {0.5, 3}},
	)
	require.NoError(t, err)
	assert.Equal(t, Bounds{MinX: -5, MaxX: 1, MinY: 0, MaxY: 3}, b)
}

func TestPoint_DistanceAndLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)

	// The default backend's bit-trick sqrt is accurate to ~0.2%.
	assert.InDelta(t, 5.0, a.Distance(b), 0.02)

	mid := a.Lerp(b, 0.5)
	assert.Equal(t, Pt(1.5, 2), mid)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}
