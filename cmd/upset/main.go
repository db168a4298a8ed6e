package main

import (
	"os"

	"github.com/rdeusser/upset/cmd/upset/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
