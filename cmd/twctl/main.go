// Package main is the entry point for the twctl CLI client.
package main

import (
	"github.com/donaldgifford/tablewatch/cmd/twctl/cmd"
)

func main() {
	cmd.Execute()
}
