package bootstrap

import (
	"context"
	"log/slog"

	"library-ledger/internal/pkg/config"
	"library-ledger/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedDemoData),
)

func seedDemoData(lc fx.Lifecycle, cfg config.Config, seed commands.SeedCommands, logger *slog.Logger) {
	if !cfg.Ledger.Seed {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := seed.SeedIfEmpty(ctx); err != nil {
				logger.Error("failed to seed demo data", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	})
}
