package main

import (
	"os"

	"github.com/abhisek/pathweaver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
