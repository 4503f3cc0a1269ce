package main

import (
	"os"

	"github.com/bnema/coresim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
