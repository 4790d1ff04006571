package main

import (
	"os"

	"github.com/msto63/toolkit/cmd/toolkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
