package threshold

import (
	"errors"
	"slices"

	"github.com/cwbudde/ebus-comparator/circuit/comparator"
	"github.com/cwbudde/ebus-comparator/circuit/divider"
)

// ErrLengthMismatch is returned when x and y have different lengths.
var ErrLengthMismatch = errors.New("threshold: x and y must have equal length")

// Crossing is a level change in a sampled output series.
type Crossing struct {
	Index int     // first sample at the new level
	X     float64 // input value at Index
	From  float64 // level before the change
	To    float64 // level after the change
}

// Rising reports whether the output moved to a higher level.
func (c Crossing) Rising() bool {
	return c.To > c.From
}

// TripPoint returns the input voltage at which the divided signal equals
// the comparator threshold. Inputs at or below it produce the low level.
func TripPoint(d *divider.Divider, c *comparator.Comparator) float64 {
	return d.InputFor(c.Threshold)
}

// Edges returns every index i > 0 where y[i] differs from y[i-1].
func Edges(x, y []float64) ([]Crossing, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	var out []Crossing
	for i := 1; i < len(y); i++ {
		if y[i] != y[i-1] {
			out = append(out, Crossing{Index: i, X: x[i], From: y[i-1], To: y[i]})
		}
	}

	return out, nil
}

// Levels returns the distinct values of y in ascending order.
func Levels(y []float64) []float64 {
	out := slices.Clone(y)
	slices.Sort(out)
	return slices.Compact(out)
}
