// Package main is the entry point for the mouldflow CLI.
package main

import (
	"os"

	"mouldflow/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
