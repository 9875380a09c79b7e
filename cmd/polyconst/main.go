package main

import (
	"os"

	"github.com/polyconst/polyconst/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
