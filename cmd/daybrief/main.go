package main

import (
	"os"

	"github.com/daybrief-ai/daybrief/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
