// Package main is the entry point for the flightscan CLI.
package main

import (
	"os"

	"flightscan-service/cmd/flightscan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
