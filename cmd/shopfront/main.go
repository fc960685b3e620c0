package main

import (
	"os"

	"github.com/shopfront-app/shopfront/internal/cli"
	"github.com/shopfront-app/shopfront/pkg/logging"
)

func main() {
	logging.Setup()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
