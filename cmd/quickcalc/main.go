// Package main provides the CLI entry point for quickcalc.
package main

import (
	"os"

	"github.com/quickcalc/quickcalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
