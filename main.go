package main

import (
	"os"

	"github.com/reprogrammability/tutorsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
