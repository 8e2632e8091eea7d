package commands

import (
	"context"
	"log/slog"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/idgen"
	"library-ledger/internal/usecase/shared"
)

type CirculationCommands interface {
	AddTransaction(ctx context.Context, fields transaction.Fields) (*transaction.Transaction, error)
	ClearTransactions(ctx context.Context) error
}

type circulationCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	ids    idgen.Generator
	logger *slog.Logger
}

func NewCirculationCommands(uow shared.UnitOfWork, clock clock.Clock, ids idgen.Generator, logger *slog.Logger) CirculationCommands {
	return &circulationCommandsImpl{
		uow:    uow,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

// AddTransaction records a borrow or return at the head of the log. The book
// code is not checked against the catalog; when it does name a catalog book, a
// borrow takes it off the shelf and a return puts it back unless something
// else still holds it.
func (c *circulationCommandsImpl) AddTransaction(ctx context.Context, fields transaction.Fields) (*transaction.Transaction, error) {
	var added *transaction.Transaction
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}

		id := c.ids.Next(now, func(id int64) bool {
			for _, t := range state.Log {
				if t.ID() == id {
					return true
				}
			}
			return false
		})
		t, err := transaction.New(id, fields, now)
		if err != nil {
			return err
		}
		state.Prepend(t)

		if b, ok := book.FindByQR(state.Books, t.BookQR()); ok {
			switch t.Type() {
			case transaction.TypeBorrow:
				state.Hold(b)
			case transaction.TypeReturn:
				state.Release(b.ID(), now)
			}
		}

		if err := state.Flush(ctx, tx); err != nil {
			return err
		}
		added = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("transaction recorded",
		slog.Int64("transaction_id", added.ID()),
		slog.String("type", added.Type().String()),
		slog.String("book_qr", added.BookQR()))
	return added, nil
}

// ClearTransactions empties the log and frees books that only loans were holding.
func (c *circulationCommandsImpl) ClearTransactions(ctx context.Context) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}
		state.ClearLog()
		state.ReleaseAll(c.clock.Now())
		return state.Flush(ctx, tx)
	})
	if err != nil {
		return err
	}
	c.logger.Info("transaction log cleared")
	return nil
}
