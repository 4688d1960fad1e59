// Package main is the entry point for the tablewatch server.
package main

import (
	"os"

	"github.com/donaldgifford/tablewatch/cmd/tablewatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
