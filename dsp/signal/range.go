package signal

import (
	"errors"
	"iter"
	"math"

	"github.com/cwbudde/ebus-comparator/dsp/core"
)

// Errors returned by range construction.
var (
	ErrInvalidStep   = errors.New("signal: step must be positive and finite")
	ErrInvalidBounds = errors.New("signal: range bounds must be finite")
	ErrEmptyRange    = errors.New("signal: stop must not be less than start")
	ErrRangeTooLarge = errors.New("signal: range exceeds maximum sample count")
)

// MaxSamples bounds the length of a Range.
const MaxSamples = 1 << 26

// endpointTolerance is measured in steps. A stop value that lies within
// this fraction of a step from a grid point is treated as that grid point.
const endpointTolerance = 1e-9

// Range describes an evenly spaced, closed sequence of sample values
// start, start+step, ..., up to and including stop when stop lies on the
// grid (within endpointTolerance steps).
//
// Element i is computed as Start + i*Step rather than by accumulation, so
// the sequence does not drift and can be iterated any number of times.
type Range struct {
	Start float64
	Stop  float64
	Step  float64
}

// NewRange validates the bounds and returns a Range.
func NewRange(start, stop, step float64) (Range, error) {
	r := Range{Start: start, Stop: stop, Step: step}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate checks that the Range parameters describe a non-empty sequence.
func (r Range) Validate() error {
	if !core.IsFinite(r.Step) || r.Step <= 0 {
		return ErrInvalidStep
	}

	if !core.AllFinite(r.Start, r.Stop) {
		return ErrInvalidBounds
	}

	if r.Stop < r.Start {
		return ErrEmptyRange
	}

	if r.steps() >= MaxSamples {
		return ErrRangeTooLarge
	}

	return nil
}

func (r Range) steps() float64 {
	return math.Floor((r.Stop-r.Start)/r.Step + endpointTolerance)
}

// Len returns the number of samples. An invalid Range has length 0.
func (r Range) Len() int {
	if r.Validate() != nil {
		return 0
	}

	return int(r.steps()) + 1
}

// At returns sample i. The last sample snaps to Stop when Stop is on the grid.
// At does not bounds-check i.
func (r Range) At(i int) float64 {
	v := r.Start + float64(i)*r.Step
	if i > 0 && math.Abs(v-r.Stop) <= endpointTolerance*r.Step {
		return r.Stop
	}

	return v
}

// Values materializes the sequence into a new slice.
func (r Range) Values() []float64 {
	n := r.Len()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.At(i)
	}

	return out
}

// All yields (index, value) pairs. Each call starts from the beginning.
func (r Range) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		n := r.Len()
		for i := range n {
			if !yield(i, r.At(i)) {
				return
			}
		}
	}
}

// Arange returns the samples of the closed range [start, stop] with the
// given step.
func Arange(start, stop, step float64) ([]float64, error) {
	r, err := NewRange(start, stop, step)
	if err != nil {
		return nil, err
	}

	return r.Values(), nil
}
