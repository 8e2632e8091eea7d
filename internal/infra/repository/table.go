package repository

import (
	"context"
	"log/slog"

	"library-ledger/internal/infra"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository/converter"
	"library-ledger/internal/pkg/errs"
)

// tableRepo maps one logical table between record shape R and entity E.
type tableRepo[R, E any] struct {
	tables   *recordstore.Tables
	logger   *slog.Logger
	name     string
	toEntity func(R) E
	toRecord func(E) R
}

func (r tableRepo[R, E]) List(ctx context.Context) ([]E, error) {
	records, err := recordstore.Read[R](ctx, r.tables, r.name)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "read", r.name, err)
	}
	return converter.MapAll(records, r.toEntity), nil
}

func (r tableRepo[R, E]) SaveAll(ctx context.Context, entities []E) error {
	err := recordstore.Write(ctx, r.tables, r.name, converter.MapAll(entities, r.toRecord))
	if err == nil {
		return nil
	}
	if errs.Is(err, errs.ErrDatabaseOperationFailed) {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "write", r.name, err)
	}
	return infra.WrapRepoErr(r.logger, infra.KindEncodeFailure, "encode", r.name, err)
}
