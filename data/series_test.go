package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_PushAndCapacity(t *testing.T) {
	s := NewSeriesWithCapacity("cap3", 3)

	require.NoError(t, s.Push(Pt(0, 1)))
	require.NoError(t, s.Push(Pt(1, 2)))
	require.NoError(t, s.Push(Pt(2, 3)))
	assert.True(t, s.IsFull())

	err := s.Push(Pt(3, 4))
	require.ErrorIs(t, err, ErrBufferFull)
	assert.Equal(t, 3, s.Len(), "overflowing push must not change the series")
	assert.Equal(t, 3, s.Capacity())
}

func TestSeries_DefaultCapacityMatchesInterpolationInput(t *testing.T) {
	s := NewSeries("default")
	assert.Equal(t, DefaultSeriesCapacity, s.Capacity())
	assert.Equal(t, 256, s.Capacity())
}

func TestSeries_ExtendStopsAtCapacity(t *testing.T) {
	s := NewSeriesWithCapacity("small", 2)
	err := s.Extend([]Point{{0, 0}, {1, 1}, {2, 2}})
	require.ErrorIs(t, err, ErrBufferFull)
	assert.Equal(t, 2, s.Len())
}

func TestSeriesFromValues(t *testing.T) {
	s, err := SeriesFromValues("vals", 5, 3, 8)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	p, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 3), p, "X is the value index")

	_, err = s.Get(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSeries_SortByX(t *testing.T) {
	s := NewSeries("unsorted")
	require.NoError(t, s.Extend([]Point{{3, 1}, {1, 2}, {2, 3}}))

	s.SortByX()
	assert.Equal(t, []Point{{1, 2}, {2, 3}, {3, 1}}, s.Points())
}

func TestSeries_ClearKeepsCapacity(t *testing.T) {
	s := NewSeriesWithCapacity("c", 4)
	require.NoError(t, s.Push(Pt(1, 1)))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.Capacity())
	require.NoError(t, s.Push(Pt(2, 2)))
}

func TestSeries_CoordinateViews(t *testing.T) {
	s := NewSeries("xy")
	require.NoError(t, s.Extend([]Point{{0, 5}, {1, 7}, {2, 9}}))

	assert.Equal(t, []float32{0, 1, 2}, s.XValues())
	assert.Equal(t, []float32{5, 7, 9}, s.YValues())

	b, err := s.Bounds()
	require.NoError(t, err)
	assert.Equal(t, Bounds{MinX: 0, MaxX: 2, MinY: 5, MaxY: 9}, b)
}

func TestSeriesFromTuples(t *testing.T) {
	s, err := SeriesFromTuples("xy", [2]float32{1, 10}, [2]float32{3, 30})
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	p, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Pt(3, 30), p)

	tuples := make([][2]float32, DefaultSeriesCapacity+1)
	_, err = SeriesFromTuples("too many", tuples...)
	assert.ErrorIs(t, err, ErrBufferFull)
}
