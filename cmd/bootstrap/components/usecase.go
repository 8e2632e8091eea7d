package components

import (
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/config"
	"library-ledger/internal/pkg/idgen"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	newLedgerClock,
	idgen.NewTimeBased,
)

func newLedgerClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedgerCommands,
		commands.NewCatalogCommands,
		commands.NewCirculationCommands,
		commands.NewMemberCommands,
		commands.NewAttendanceCommands,
		commands.NewSeedCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
		queries.NewTransactionQueries,
		queries.NewReportQueries,
		queries.NewMemberQueries,
		queries.NewAttendanceQueries,
	),
)
