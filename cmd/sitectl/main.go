// Package main is the entry point for the sitectl CLI tool.
package main

import (
	"os"

	"github.com/good-yellow-bee/siteboard/cmd/sitectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
