// Package main is the entry point for the rarlens CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/rarlens/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
