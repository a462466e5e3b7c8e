package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file if present
	"github.com/urfave/cli/v2"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "chain-directory",
		Usage:   "Chain configuration and safe app directory service",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Directory containing config.yaml",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the configured log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			cmdServe,
			cmdSeed,
			cmdVersion,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
