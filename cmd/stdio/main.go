package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/mcp"
	"github.com/rxtech-lab/chain-directory/internal/server"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	// Command line flags
	var showVersion = flag.Bool("version", false, "Show version information")
	var enableLog = flag.Bool("log", false, "Enable logging output")
	var configPath = flag.String("config", ".", "Directory containing config.yaml")
	flag.Parse()

	// Stdout carries the MCP stream, so logging stays off unless asked for
	if !*enableLog {
		log.SetOutput(io.Discard)
	}

	if *showVersion {
		fmt.Printf("Chain Directory MCP Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", CommitHash)
		fmt.Printf("Built: %s\n", BuildTime)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbService, err := server.OpenDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer dbService.Close()

	chainService, gasPriceService, walletService, featureService, safeAppService := server.InitializeServices(dbService.GetDB())
	mcpServer := mcp.NewMCPServer(chainService, gasPriceService, walletService, featureService, safeAppService)

	// Serves until the client closes the stream
	if err := mcpServer.Start(); err != nil {
		log.Fatal("Failed to start MCP server:", err)
	}
}
