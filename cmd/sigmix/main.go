// SPDX-License-Identifier: MIT
// Command sigmix cooks signal recipes from yaml files.
//
//	sigmix demo --out output
//	sigmix cook --recipe recipe.yaml --chart out/recipe.svg
//	sigmix compare -r a.yaml -r b.yaml --window 5
package main

import (
	"os"

	"github.com/katalvlaran/sigmix/internal/command"
)

func main() {
	os.Exit(command.Main(os.Args, os.Stdout, os.Stderr))
}
