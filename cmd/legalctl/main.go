// Command legalctl answers tenant questions and looks up legal sections from
// the terminal, without a server.
package main

import (
	"fmt"
	"os"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd(newApp())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
