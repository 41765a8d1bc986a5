package main

import (
	"os"

	"matchmaker/cmd/matchctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
