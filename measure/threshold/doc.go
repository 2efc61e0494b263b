// Package threshold locates where a divider/comparator pair switches.
//
// The trip point is found analytically from the divider ratio, while
// Edges scans a sampled two-level series for level changes. For a dense
// sweep, the first edge lies within one sample step above the trip point.
//
// # Usage
//
//	vin := threshold.TripPoint(d, c)       // 11.795 for 237/100 Ω and 3.5 V
//	edges, _ := threshold.Edges(x, y)      // sampled transitions
package threshold
