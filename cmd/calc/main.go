package main

import (
	"os"

	"github.com/cmlabs-hris/device-benefit-calculator/cmd/calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
