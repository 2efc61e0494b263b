// Package commands defines the comparatorgraph CLI.
//
// Commands
//
//   - (root)   Render the divider/comparator chart
//   - config   Print the effective configuration as YAML
//
// Both commands accept --config to load settings from a YAML, JSON or TOML
// file. Flags given on the command line override values from that file.
package commands
