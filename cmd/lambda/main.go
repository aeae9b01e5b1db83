package main

import (
	"os"

	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
