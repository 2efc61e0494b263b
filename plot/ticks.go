package plot

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// defaultTickCount is the number of ticks aimed for on each axis.
const defaultTickCount = 8

// tickedRange is a continuous range that carries its own ticks.
//
// Axis.Ticks must stay empty: go-chart resets an axis range to the extent
// of explicit ticks, and for the secondary y axis it reads the primary
// axis ticks instead. Ticks supplied through chart.TicksProvider leave the
// configured range untouched.
type tickedRange struct {
	chart.ContinuousRange
	ticks []chart.Tick
}

// GetTicks implements chart.TicksProvider.
func (r *tickedRange) GetTicks(chart.Renderer, chart.Style, chart.ValueFormatter) []chart.Tick {
	return r.ticks
}

// newTickedRange widens [lo, hi] outward to the tick grid so that the
// first and last tick are the range bounds.
func newTickedRange(lo, hi float64, n int) *tickedRange {
	ticks, first, last, ok := axisTicks(lo, hi, n)
	if !ok {
		return &tickedRange{ContinuousRange: chart.ContinuousRange{Min: lo, Max: hi}}
	}

	return &tickedRange{
		ContinuousRange: chart.ContinuousRange{Min: first, Max: last},
		ticks:           ticks,
	}
}

// tickStep picks the step on the 1-2-2.5-5 grid whose enclosing tick
// extent around [lo, hi] is tightest, allowing at most n+3 ticks.
func tickStep(lo, hi float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10((hi-lo)/float64(n-1))))
	best, bestExtent := 10*mag, math.Inf(1)
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		k0, k1 := math.Floor(lo/step), math.Ceil(hi/step)
		if k1-k0+1 > float64(n+3) {
			continue
		}
		if extent := (k1 - k0) * step; extent < bestExtent {
			best, bestExtent = step, extent
		}
	}

	return best
}

// axisTicks returns ticks at every multiple of a nice step from
// floor(lo/step)*step through ceil(hi/step)*step. The returned bounds
// always enclose [lo, hi]. ok is false for an empty or non-finite
// interval or n < 2.
func axisTicks(lo, hi float64, n int) (ticks []chart.Tick, first, last float64, ok bool) {
	if n < 2 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi <= lo {
		return nil, lo, hi, false
	}

	step := tickStep(lo, hi, n)
	k0 := math.Floor(lo / step)
	k1 := math.Ceil(hi / step)

	ticks = make([]chart.Tick, int(k1-k0)+1)
	for i := range ticks {
		v := (k0 + float64(i)) * step
		ticks[i] = chart.Tick{Value: v, Label: formatTick(v)}
	}

	first, last = k0*step, k1*step
	// k*step can round to just inside the interval.
	first = math.Min(first, lo)
	last = math.Max(last, hi)
	ticks[0].Value = first
	ticks[len(ticks)-1].Value = last

	return ticks, first, last, true
}
