package main

import (
	"os"

	"tapecalc/cmd/tapecalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
