package components

import (
	"library-ledger/internal/infra/uow"
	"library-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewRecordUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
