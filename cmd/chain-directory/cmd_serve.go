package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/api"
	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/logger"
	"github.com/rxtech-lab/chain-directory/internal/server"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

var cmdServe = &cli.Command{
	Name:  "serve",
	Usage: "Start the directory HTTP API",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "port",
			Usage: "Listen port, overriding the configured one",
		},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := config.Load(cctx.String("config"))
		if err != nil {
			return err
		}
		if cctx.IsSet("port") {
			cfg.Server.Port = cctx.Int("port")
		}
		if cctx.IsSet("log-level") {
			cfg.Logger.Level = cctx.String("log-level")
		}

		zapLogger := logger.New(cfg.Logger)
		defer zapLogger.Sync() //nolint:errcheck

		dbService, err := server.OpenDatabase(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer dbService.Close()

		apiServer, port, err := configureAndStartServer(cfg, zapLogger, dbService)
		if err != nil {
			return fmt.Errorf("failed to start API server: %w", err)
		}
		zapLogger.Info("API server started", zap.Int("port", port))

		// Set up graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		zapLogger.Info("Shutting down server")
		if err := apiServer.Shutdown(); err != nil {
			zapLogger.Error("Error shutting down API server", zap.Error(err))
		}
		return nil
	},
}

// configureAndStartServer wires the services and the response cache into an
// API server and starts it. A configured port of 0 picks a random free one.
func configureAndStartServer(cfg *config.Config, zapLogger *zap.Logger, dbService services.DBService) (*api.APIServer, int, error) {
	chainService, _, _, _, safeAppService := server.InitializeServices(dbService.GetDB())

	safeAppsCache, err := server.InitializeSafeAppsCache(cfg.Cache, zapLogger)
	if err != nil {
		return nil, 0, err
	}

	apiServer := api.NewAPIServer(cfg, zapLogger, chainService, safeAppService, safeAppsCache)

	var portPtr *int
	if cfg.Server.Port != 0 {
		portPtr = &cfg.Server.Port
	}
	startedPort, err := apiServer.Start(portPtr)
	if err != nil {
		return nil, 0, err
	}
	return apiServer, startedPort, nil
}
