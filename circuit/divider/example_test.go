package divider_test

import (
	"fmt"

	"github.com/cwbudde/ebus-comparator/circuit/divider"
)

func ExampleDivider_ProcessSample() {
	d, err := divider.New(237, 100)
	if err != nil {
		panic(err)
	}

	fmt.Printf("ratio=%.4f out=%.3f in=%.3f\n", d.Ratio(), d.ProcessSample(11.795), d.InputFor(3.5))

	// Output:
	// ratio=0.2967 out=3.500 in=11.795
}
