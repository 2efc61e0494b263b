package comparator

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/ebus-comparator/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	bad := [][3]float64{
		{math.NaN(), 0, 7},
		{3.5, math.Inf(-1), 7},
		{3.5, 0, math.NaN()},
	}
	for _, p := range bad {
		if _, err := New(p[0], p[1], p[2]); !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("New(%v) error = %v, want ErrInvalidThreshold", p, err)
		}
	}

	if _, err := New(3.5, 5, 5); err != nil {
		t.Fatalf("New() with equal levels error = %v", err)
	}
}

func TestProcessSampleTieBreak(t *testing.T) {
	c, err := New(3.5, 0, 7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		in, want float64
	}{
		{3.5, 0},
		{3.51, 7},
		{3.4999, 0},
		{-100, 0},
		{100, 7},
	}
	for _, tt := range tests {
		if got := c.ProcessSample(tt.in); got != tt.want {
			t.Fatalf("ProcessSample(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProcessSampleNaN(t *testing.T) {
	c, err := New(3.5, 0, 7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := c.ProcessSample(math.NaN()); got != 7 {
		t.Fatalf("ProcessSample(NaN) = %v, want 7", got)
	}
}

func TestInvertedLevels(t *testing.T) {
	c, err := New(0, 1, -1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.ProcessSample(-0.1) != 1 || c.ProcessSample(0.1) != -1 {
		t.Fatal("expected inverted output levels")
	}
}

func TestTwoLevelsAcrossThreshold(t *testing.T) {
	thresholds := []float64{-1, 0, 2.67, 3.5, 7.25}
	for _, th := range thresholds {
		c, err := New(th, 0, 7)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		src := testutil.Ramp(th-1, 0.01, 201)
		dst := make([]float64, len(src))
		c.ProcessBlockTo(dst, src)
		testutil.RequireLevels(t, dst, 0, 7)

		for i, v := range src {
			want := 7.0
			if v <= th {
				want = 0
			}
			if dst[i] != want {
				t.Fatalf("threshold %v index %d: got %v, want %v", th, i, dst[i], want)
			}
		}
	}
}

func TestConstantInputAroundThreshold(t *testing.T) {
	c, err := New(3.5, 0, 7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	buf := testutil.DC(3.5, 16)
	c.ProcessBlock(buf)
	testutil.RequireLevels(t, buf, 0)

	buf = testutil.DC(3.5000001, 16)
	c.ProcessBlock(buf)
	testutil.RequireLevels(t, buf, 7)
}

func TestProcessBlockInPlace(t *testing.T) {
	c, err := New(1, -5, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	buf := []float64{0, 1, 1.5, 2}
	c.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{-5, -5, 5, 5}, 0)
}

func TestLevels(t *testing.T) {
	c, err := New(3.5, 0, 7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	low, high := c.Levels()
	if low != 0 || high != 7 {
		t.Fatalf("Levels() = (%v, %v), want (0, 7)", low, high)
	}
}

func TestProcessBlockToLengthMismatchPanics(t *testing.T) {
	c, err := New(3.5, 0, 7)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	c.ProcessBlockTo(make([]float64, 1), nil)
}
