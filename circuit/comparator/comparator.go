// Package comparator models an ideal two-level voltage comparator.
package comparator

import (
	"errors"
	"fmt"

	"github.com/cwbudde/ebus-comparator/dsp/core"
)

// ErrInvalidThreshold is returned when a comparator parameter is not finite.
var ErrInvalidThreshold = errors.New("comparator: threshold and levels must be finite")

// Comparator maps its input to one of two output levels. Inputs at or below
// Threshold produce Low; everything else produces High.
type Comparator struct {
	Threshold float64 // reference voltage
	Low       float64 // output for v <= Threshold
	High      float64 // output for v > Threshold
}

// New returns a Comparator. Low and High may be equal.
func New(threshold, low, high float64) (*Comparator, error) {
	if !core.AllFinite(threshold, low, high) {
		return nil, fmt.Errorf("%w: threshold=%v low=%v high=%v", ErrInvalidThreshold, threshold, low, high)
	}

	return &Comparator{Threshold: threshold, Low: low, High: high}, nil
}

// Levels returns the two output levels.
func (c *Comparator) Levels() (low, high float64) {
	return c.Low, c.High
}

// ProcessSample returns Low when v <= Threshold, otherwise High.
// A NaN input fails the comparison and yields High.
func (c *Comparator) ProcessSample(v float64) float64 {
	if v <= c.Threshold {
		return c.Low
	}

	return c.High
}

// ProcessBlock thresholds buf in place.
func (c *Comparator) ProcessBlock(buf []float64) {
	for i, v := range buf {
		buf[i] = c.ProcessSample(v)
	}
}

// ProcessBlockTo thresholds src into dst. Both slices must have the same length.
func (c *Comparator) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("comparator: length mismatch dst=%d src=%d", len(dst), len(src)))
	}
	for i, v := range src {
		dst[i] = c.ProcessSample(v)
	}
}
