package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"library-ledger/internal/infra/db"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/uow"
	"library-ledger/internal/pkg/config"
	"library-ledger/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewMedium,
	),
)

// NewMedium opens the record store medium selected by STORE_DRIVER.
func NewMedium(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (recordstore.Medium, error) {
	var (
		medium  recordstore.Medium
		cleanup func()
	)

	driver := strings.ToLower(cfg.Store.Driver)
	switch driver {
	case config.DriverMemory:
		medium = recordstore.NewMemoryMedium()
	case config.DriverSQLite:
		sqliteDB, closeDB, err := db.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		medium, cleanup = uow.NewSQLiteMedium(sqliteDB, logger), closeDB
	case config.DriverPostgres:
		pool, closePool, err := db.ConnectPostgres(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		medium, cleanup = uow.NewPostgresMedium(pool, logger), closePool
	default:
		return nil, errs.Newf("unknown store driver %q", cfg.Store.Driver)
	}

	logger.Info("record store opened", slog.String("driver", driver))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return medium, nil
}
