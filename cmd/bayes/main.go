package main

import (
	"os"

	"github.com/YahelOmesi/Variable-Elimination/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
