package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/assets"
	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/logger"
	"github.com/rxtech-lab/chain-directory/internal/seed"
	"github.com/rxtech-lab/chain-directory/internal/server"
)

var cmdSeed = &cli.Command{
	Name:  "seed",
	Usage: "Load a YAML seed document into the directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "file",
			Usage: "Path to the seed document (defaults to the embedded starter document)",
		},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := config.Load(cctx.String("config"))
		if err != nil {
			return err
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

		chainService, gasPriceService, walletService, featureService, safeAppService := server.InitializeServices(dbService.GetDB())
		seeder, err := seed.NewSeeder(chainService, gasPriceService, walletService, featureService, safeAppService)
		if err != nil {
			return err
		}

		var file *seed.File
		if path := cctx.String("file"); path != "" {
			file, err = seeder.LoadFile(path)
		} else {
			file, err = seeder.Load(assets.StarterSeed)
		}
		if err != nil {
			return err
		}
		if err := seeder.Apply(file); err != nil {
			return err
		}

		zapLogger.Info("Seed document applied",
			zap.Int("chains", len(file.Chains)),
			zap.Int("wallets", len(file.Wallets)),
			zap.Int("features", len(file.Features)),
			zap.Int("safeApps", len(file.SafeApps)),
		)
		return nil
	},
}
