package microchart

import (
	"strconv"

	"github.com/tphakala/go-microchart/data"
)

// defaultMaxTicks bounds tick generation so labels stay readable on small
// displays.
const defaultMaxTicks = 6

// Tick is one labeled axis position.
type Tick struct {
	Value float32
	Label string
}

// Axis is a linear value axis over [Min, Max] that generates ticks on
// nice-number steps (1, 2 or 5 times a power of ten).
type Axis struct {
	Min      float32
	Max      float32
	MaxTicks int
}

// NewAxis creates an axis over the given range with the default tick
// budget. An inverted range is swapped rather than rejected.
func NewAxis(minVal, maxVal float32) Axis {
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}
	return Axis{Min: minVal, Max: maxVal, MaxTicks: defaultMaxTicks}
}

// Ticks returns labeled positions covering the axis range. A degenerate
// range yields a single tick at its value.
func (a Axis) Ticks() []Tick {
	if a.MaxTicks < 2 {
		a.MaxTicks = 2
	}
	span := a.Max - a.Min
	if span <= 0 {
		return []Tick{{Value: a.Min, Label: formatTick(a.Min)}}
	}

	step := data.NiceNumber(span/float32(a.MaxTicks-1), true)
	if step <= 0 {
		return []Tick{{Value: a.Min, Label: formatTick(a.Min)}}
	}

	// First tick at the smallest step multiple inside the range.
	first := step * float32(int(a.Min/step))
	for first < a.Min {
		first += step
	}

	ticks := make([]Tick, 0, a.MaxTicks+1)
	for v := first; v <= a.Max+step/1000; v += step {
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > a.MaxTicks {
			break
		}
	}
	return ticks
}

// formatTick renders a tick value compactly: integers without a decimal
// point, everything else with up to three significant decimals.
func formatTick(v float32) string {
	if v == float32(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'g', 3, 32)
}
