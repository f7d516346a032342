package main

import (
	"fmt"
	"os"

	"github.com/rpgo/nestegg/internal/cli"
)

func main() {
	command := cli.NewCmdRoot()
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
