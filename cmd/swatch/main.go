// Swatch - colour names for the terminal
//
// Swatch looks up, previews and completes named colours from the X11, web
// and ANSI palettes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
