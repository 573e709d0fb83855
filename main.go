package main

import (
	"os"

	"github.com/mkadlec/spinup/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
