package main

import (
	"supply_checker/internal/cli"
	"supply_checker/internal/pkg/logger"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		logger.Fatal("supply_checker failed", "error", err)
	}
}
