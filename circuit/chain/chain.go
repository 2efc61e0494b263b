// Package chain runs a sample sequence through the divider and comparator
// stages of the receive path.
package chain

import "github.com/cwbudde/ebus-comparator/dsp/core"

// Stage is a block processor that writes a transformed copy of src into dst.
// Both slices have the same length.
type Stage interface {
	ProcessBlockTo(dst, src []float64)
}

// Result holds the input samples and both output series, aligned by index.
type Result struct {
	Input    []float64
	Divided  []float64
	Compared []float64
}

// Len returns the number of samples in the result.
func (r *Result) Len() int {
	return len(r.Input)
}

// Run applies divider to every sample, then comparator to every divided
// value. samples is not modified; Input aliases it.
func Run(samples []float64, divider, comparator Stage) Result {
	var res Result
	RunInto(&res, samples, divider, comparator)
	return res
}

// RunInto is like Run but reuses the output buffers already held by res.
func RunInto(res *Result, samples []float64, divider, comparator Stage) {
	n := len(samples)
	res.Input = samples
	res.Divided = core.EnsureLen(res.Divided, n)
	res.Compared = core.EnsureLen(res.Compared, n)
	if n == 0 {
		return
	}

	divider.ProcessBlockTo(res.Divided, samples)
	comparator.ProcessBlockTo(res.Compared, res.Divided)
}
