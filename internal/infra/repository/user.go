package repository

import (
	"log/slog"

	"library-ledger/internal/domain/user"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository/converter"
)

type UserRepository struct {
	tableRepo[converter.UserRecord, *user.User]
}

func NewUserRepository(tables *recordstore.Tables, logger *slog.Logger) *UserRepository {
	return &UserRepository{tableRepo[converter.UserRecord, *user.User]{
		tables:   tables,
		logger:   logger,
		name:     recordstore.TableUsers,
		toEntity: converter.UserFromRecord,
		toRecord: converter.UserToRecord,
	}}
}
