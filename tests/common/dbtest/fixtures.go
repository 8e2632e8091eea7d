//go:build unit || e2e

package dbtest

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/domain/user"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/uow"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/idgen"
	"library-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// Epoch is the default starting instant of the mock clock.
var Epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

var allTables = []string{
	recordstore.TableUsers,
	recordstore.TableBooks,
	recordstore.TableReservations,
	recordstore.TableTransactions,
	recordstore.TableLogs,
}

// Ledger bundles an in-memory store with a controllable clock and
// deterministic ids.
type Ledger struct {
	Medium *recordstore.MemoryMedium
	UoW    shared.UnitOfWork
	Clock  *clock.MockClock
	IDs    *idgen.Sequence
	Logger *slog.Logger
}

func NewLedger(t *testing.T) *Ledger {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	medium := recordstore.NewMemoryMedium()
	return &Ledger{
		Medium: medium,
		UoW:    uow.NewRecordUoW(medium, logger),
		Clock:  clock.NewMockClock(Epoch),
		IDs:    idgen.NewSequence(),
		Logger: logger,
	}
}

func (l *Ledger) SeedBooks(t *testing.T, books ...*book.Book) {
	t.Helper()
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Books().SaveAll(ctx, books)
	})
}

func (l *Ledger) SeedReservations(t *testing.T, rs ...*reservation.Reservation) {
	t.Helper()
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().SaveAll(ctx, rs)
	})
}

// SeedTransactions stores log as given, most recent first.
func (l *Ledger) SeedTransactions(t *testing.T, log ...*transaction.Transaction) {
	t.Helper()
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Transactions().SaveAll(ctx, log)
	})
}

func (l *Ledger) SeedUsers(t *testing.T, users ...*user.User) {
	t.Helper()
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SaveAll(ctx, users)
	})
}

func (l *Ledger) Books(t *testing.T) []*book.Book {
	t.Helper()
	var out []*book.Book
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = tx.Books().List(ctx)
		return err
	})
	return out
}

func (l *Ledger) Book(t *testing.T, id int64) *book.Book {
	t.Helper()
	b, ok := book.FindByID(l.Books(t), id)
	require.True(t, ok, "book %d not stored", id)
	return b
}

func (l *Ledger) Reservations(t *testing.T) []*reservation.Reservation {
	t.Helper()
	var out []*reservation.Reservation
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = tx.Reservations().List(ctx)
		return err
	})
	return out
}

func (l *Ledger) Transactions(t *testing.T) []*transaction.Transaction {
	t.Helper()
	var out []*transaction.Transaction
	l.within(t, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = tx.Transactions().List(ctx)
		return err
	})
	return out
}

// Snapshot captures the raw payload of every table.
func (l *Ledger) Snapshot() map[string][]byte {
	snap := make(map[string][]byte, len(allTables))
	for _, name := range allTables {
		if b, ok := l.Medium.Raw(name); ok {
			snap[name] = b
		}
	}
	return snap
}

func (l *Ledger) within(t *testing.T, fn func(ctx context.Context, tx shared.Tx) error) {
	t.Helper()
	require.NoError(t, l.UoW.Within(context.Background(), fn))
}

// StoredBook is a shorthand for an available catalog entry.
func StoredBook(id int64, title, qr string) *book.Book {
	return book.Reconstruct(id, book.Fields{Title: title, Author: "Author " + title, QR: qr}, true)
}
