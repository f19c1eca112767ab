package main

import (
	"os"

	"github.com/helio-labs/heliotime/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
