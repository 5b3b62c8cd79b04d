package main

import (
	"os"

	"github.com/bnema/gimme-omni/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
