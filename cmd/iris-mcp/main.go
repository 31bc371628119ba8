package main

import (
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
