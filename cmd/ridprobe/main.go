package main

import (
	"os"

	"github.com/bbq191/ridprobe/cmd/ridprobe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
