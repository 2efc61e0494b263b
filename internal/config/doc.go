// Package config loads the circuit, sweep and chart settings used by the
// comparatorgraph command.
//
// Built-in defaults reproduce the reference eBUS adapter: a 237 Ω / 100 Ω
// divider, a 3.5 V comparator switching between 0 V and 7 V, and a bus
// sweep from 9 V to 24.5 V in 10 mV steps written to outputs.png.
package config
