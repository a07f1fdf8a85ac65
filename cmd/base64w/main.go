package main

import (
	"os"

	"github.com/fatih/color"
)

var version = "dev" // set at build time via -ldflags "-X main.version=..."

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
