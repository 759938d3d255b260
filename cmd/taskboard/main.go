package main

import (
	"os"

	"github.com/fsabado/management-app-demo/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
