// Package divider models an unloaded two-resistor voltage divider.
//
// The divider scales its input by the ratio
//
//	vout = vin * R2 / (R1 + R2)
//
// where R1 is the upper (series) resistor and R2 the lower resistor to
// ground. The model is linear and stateless, so a Divider can be shared
// freely and applied sample by sample or to whole blocks.
//
// # Usage
//
//	d, _ := divider.New(237, 100)
//	d.ProcessSample(11.795) // ≈ 3.5
//	d.InputFor(3.5)         // ≈ 11.795
package divider
