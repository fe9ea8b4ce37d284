package main

import (
	"os"

	"github.com/bianoble/transform-results/cmd/transform-results/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
