package queries

import (
	"context"
	"log/slog"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/shared"
)

type CatalogQueries interface {
	GetBooks(ctx context.Context) ([]*book.Book, error)
	GetBookByID(ctx context.Context, id int64) (*book.Book, error)
	// FindBookByQR returns nil without an error when no book carries the code.
	FindBookByQR(ctx context.Context, code string) (*book.Book, error)
	// GetAvailableBooks sweeps expired reservations before listing.
	GetAvailableBooks(ctx context.Context) ([]*book.Book, error)
}

type catalogQueriesImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCatalogQueries(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, clock: clock, logger: logger}
}

func (q *catalogQueriesImpl) GetBooks(ctx context.Context) ([]*book.Book, error) {
	var books []*book.Book
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		books, err = tx.Books().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (q *catalogQueriesImpl) GetBookByID(ctx context.Context, id int64) (*book.Book, error) {
	books, err := q.GetBooks(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := book.FindByID(books, id)
	if !ok {
		return nil, errs.Wrapf(shared.ErrBookNotFound, "book %d", id)
	}
	return b, nil
}

func (q *catalogQueriesImpl) FindBookByQR(ctx context.Context, code string) (*book.Book, error) {
	books, err := q.GetBooks(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := book.FindByQR(books, code)
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (q *catalogQueriesImpl) GetAvailableBooks(ctx context.Context) ([]*book.Book, error) {
	var (
		available []*book.Book
		swept     int
	)
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}
		swept = len(state.Sweep(q.clock.Now()))
		if err := state.Flush(ctx, tx); err != nil {
			return err
		}
		available = state.AvailableBooks()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if swept > 0 {
		q.logger.Info("expired reservations swept", slog.Int("count", swept))
	}
	return available, nil
}
