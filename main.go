package main

import (
	"os"

	"github.com/tyrantkhan/tcx-pause-remover/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
