package main

import (
	"os"

	"github.com/Vinayak4780/Guard/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
