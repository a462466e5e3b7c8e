package handler

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rxtech-lab/chain-directory/internal/api"
	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/logger"
	"github.com/rxtech-lab/chain-directory/internal/server"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

var (
	apiServer   *api.APIServer
	initialized bool
)

// Handler is the main Vercel function handler
func Handler(w http.ResponseWriter, r *http.Request) {
	// Initialize the API server only once
	if !initialized {
		if err := initializeAPIServer(); err != nil {
			log.Printf("Failed to initialize API server: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		initialized = true
	}

	// Use Fiber's HTTP adaptor to handle the request with the existing API server
	adaptor.FiberApp(apiServer.GetFiberApp())(w, r)
}

// initializeAPIServer wires the directory service for serverless hosting.
func initializeAPIServer() error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	zapLogger := logger.New(cfg.Logger)

	dbPath, err := getDatabasePath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	dbService, err := services.NewSqliteDBService(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	chainService, _, _, _, safeAppService := server.InitializeServices(dbService.GetDB())

	safeAppsCache, err := server.InitializeSafeAppsCache(cfg.Cache, zapLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	apiServer = api.NewAPIServer(cfg, zapLogger, chainService, safeAppService, safeAppsCache)

	// Add a root route for Vercel
	apiServer.GetFiberApp().Get("/", func(c *fiber.Ctx) error {
		return c.JSON(map[string]interface{}{
			"message": "Chain Directory API",
			"status":  "running",
			"version": cfg.App.Version,
		})
	})

	return nil
}

// getDatabasePath returns the appropriate database path for the Vercel environment
func getDatabasePath() (string, error) {
	// Vercel functions only get writable storage under /tmp
	if os.Getenv("VERCEL") == "1" {
		return "/tmp/chain-directory.db", nil
	}

	// For local development, use home directory
	homePath, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homePath, "chain-directory.db"), nil
}
