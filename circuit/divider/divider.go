package divider

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/ebus-comparator/dsp/core"
)

// ErrInvalidResistance is returned when a resistor value is not positive and finite.
var ErrInvalidResistance = errors.New("divider: resistance must be positive and finite")

// Divider is a resistive voltage divider. The zero value is not usable;
// construct with New.
type Divider struct {
	R1 float64 // upper resistor in ohms
	R2 float64 // lower resistor in ohms

	ratio float64
}

// New returns a Divider for the given resistor pair.
func New(r1, r2 float64) (*Divider, error) {
	if !core.IsFinite(r1) || r1 <= 0 {
		return nil, fmt.Errorf("%w: r1=%v", ErrInvalidResistance, r1)
	}
	if !core.IsFinite(r2) || r2 <= 0 {
		return nil, fmt.Errorf("%w: r2=%v", ErrInvalidResistance, r2)
	}

	return &Divider{R1: r1, R2: r2, ratio: r2 / (r1 + r2)}, nil
}

// Ratio returns the transfer ratio R2/(R1+R2).
func (d *Divider) Ratio() float64 {
	return d.ratio
}

// ProcessSample returns the divided voltage for input v.
func (d *Divider) ProcessSample(v float64) float64 {
	return d.ratio * v
}

// ProcessBlock divides buf in place.
func (d *Divider) ProcessBlock(buf []float64) {
	vecmath.ScaleBlock(buf, buf, d.ratio)
}

// ProcessBlockTo divides src into dst. Both slices must have the same length.
func (d *Divider) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("divider: length mismatch dst=%d src=%d", len(dst), len(src)))
	}
	vecmath.ScaleBlock(dst, src, d.ratio)
}

// InputFor returns the input voltage that produces vout at the tap.
func (d *Divider) InputFor(vout float64) float64 {
	return vout / d.ratio
}

// TheveninResistance returns the source resistance seen from the tap,
// R1 in parallel with R2.
func (d *Divider) TheveninResistance() float64 {
	return d.R1 * d.R2 / (d.R1 + d.R2)
}
