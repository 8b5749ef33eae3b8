package main

import (
	"os"

	"github.com/UberChili/pngmev2/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
