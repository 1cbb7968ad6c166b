package main

import (
	"os"

	"github.com/njchilds90/goscicalc/cmd/scicalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
