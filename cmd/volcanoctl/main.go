package main

import (
	"os"

	"volcano-insurance-api/cmd/volcanoctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
