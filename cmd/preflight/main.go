package main

import (
	"os"

	"github.com/preflightci/preflight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
