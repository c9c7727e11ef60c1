// Package main provides the cdigen binary entry point.
package main

import (
	"fmt"
	"os"

	"github.com/statmeta/cdigen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
