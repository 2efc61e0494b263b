package series_test

import (
	"fmt"

	"github.com/cwbudde/ebus-comparator/stats/series"
)

func ExampleCalculate() {
	s := series.Calculate([]float64{2.5, 3.5, 4.5})
	fmt.Printf("min=%.1f max=%.1f mean=%.1f\n", s.Min, s.Max, s.Mean)

	// Output:
	// min=2.5 max=4.5 mean=3.5
}
