package main

import (
	"fmt"
	"os"

	"github.com/napalu/complgen/internal/cli"
)

// injected via ldflags at build time
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
