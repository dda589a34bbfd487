package main

import (
	"fmt"
	"os"

	"github.com/smartmcq/mcqgen/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mcqgen: %v\n", err)
		os.Exit(1)
	}
}
