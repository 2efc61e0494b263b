// Package series computes summary statistics of sampled voltage series.
package series

// Stats holds range statistics of a series.
type Stats struct {
	Length int
	Mean   float64
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Range  float64 // Max - Min
}

// Calculate computes Stats in a single pass. An empty series yields the
// zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		Length: n,
		Min:    signal[0],
		Max:    signal[0],
	}
	for i, x := range signal {
		if x > s.Max {
			s.Max = x
			s.MaxPos = i
		}
		if x < s.Min {
			s.Min = x
			s.MinPos = i
		}
	}
	s.Mean = Mean(signal)
	s.Range = s.Max - s.Min

	return s
}

// Mean returns the arithmetic mean of the signal using Kahan summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// DutyCycle returns the fraction of samples equal to high. Two-level
// outputs hold their levels exactly, so no tolerance is applied. An empty
// series has duty cycle 0.
func DutyCycle(signal []float64, high float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var n int
	for _, x := range signal {
		if x == high {
			n++
		}
	}

	return float64(n) / float64(len(signal))
}
