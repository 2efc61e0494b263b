// Command comparatorgraph sweeps the eBUS voltage through the adapter's
// voltage divider and comparator and writes a dual-axis chart.
//
// Usage:
//
//	comparatorgraph [flags]
//	comparatorgraph config [flags]
//
// Without flags it writes outputs.png in the current directory.
package main

import (
	"os"

	"github.com/cwbudde/ebus-comparator/cmd/comparatorgraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
