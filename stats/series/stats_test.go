package series

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	s := Calculate([]float64{2.67, 3.5, 7.27, 1.0})

	if s.Length != 4 {
		t.Fatalf("Length = %d, want 4", s.Length)
	}
	if s.Min != 1.0 || s.MinPos != 3 {
		t.Fatalf("Min = %v at %d, want 1 at 3", s.Min, s.MinPos)
	}
	if s.Max != 7.27 || s.MaxPos != 2 {
		t.Fatalf("Max = %v at %d, want 7.27 at 2", s.Max, s.MaxPos)
	}
	if math.Abs(s.Range-6.27) > 1e-12 {
		t.Fatalf("Range = %v, want 6.27", s.Range)
	}
	if math.Abs(s.Mean-3.61) > 1e-12 {
		t.Fatalf("Mean = %v, want 3.61", s.Mean)
	}
}

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", s)
	}
}

func TestMeanKahan(t *testing.T) {
	x := make([]float64, 10000)
	for i := range x {
		x[i] = 0.01
	}
	if m := Mean(x); math.Abs(m-0.01) > 1e-15 {
		t.Fatalf("Mean = %v, want 0.01", m)
	}
	if Mean(nil) != 0 {
		t.Fatal("expected zero mean for empty input")
	}
}

func TestDutyCycle(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		high float64
		want float64
	}{
		{"half", []float64{0, 0, 7, 7}, 7, 0.5},
		{"all low", []float64{0, 0}, 7, 0},
		{"inverted levels", []float64{7, 7, 7, 0}, 0, 0.25},
		{"between levels", []float64{3.5, 7}, 3.5, 0.5},
		{"empty", nil, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DutyCycle(tt.in, tt.high); got != tt.want {
				t.Fatalf("DutyCycle() = %v, want %v", got, tt.want)
			}
		})
	}
}
