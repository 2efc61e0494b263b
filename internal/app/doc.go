// Package app wires the receive-path components from a Config and runs
// one sweep: generate samples, evaluate divider and comparator, locate the
// trip point and write the chart.
package app
