package main

import (
	"os"

	"graphview/cmd/graphview/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
