// Package plot renders the divider and comparator series as a dual-axis
// chart using go-chart.
//
// The primary series (divider output) is drawn as a line on the left axis
// with grid lines. The secondary series (comparator output) is drawn as a
// step trace on an independent right axis. Both share the x axis. An
// optional annotation places a text label and an arrow pointing at a data
// point on the primary axis.
//
// Rendering is deterministic: identical inputs produce identical bytes.
package plot
