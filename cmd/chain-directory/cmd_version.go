package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdVersion = &cli.Command{
	Name:  "version",
	Usage: "Show version and build information",
	Action: func(cctx *cli.Context) error {
		fmt.Printf("chain-directory\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", CommitHash)
		fmt.Printf("Built: %s\n", BuildTime)
		return nil
	},
}
