// Copyright
// SPDX-License-Identifier: MIT
// uricodec: two-pane percent-encoding editor and encode/decode CLI
package main

import (
	"fmt"
	"os"

	"uricodec/cmd"
)

// Version information set via ldflags at build time
var version = "0.1.0"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
