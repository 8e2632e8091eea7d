//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/queries"
	"library-ledger/tests/common/builder"
	"library-ledger/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type circulationFixture struct {
	ledger *dbtest.Ledger
	cmds   commands.CirculationCommands
	q      queries.TransactionQueries
}

func newCirculationFixture(t *testing.T) *circulationFixture {
	l := dbtest.NewLedger(t)
	l.SeedBooks(t,
		dbtest.StoredBook(1, "Venus", "BOOK-VENUS"),
		dbtest.StoredBook(2, "Taste and Smell", "BOOK-TASTE"),
	)
	return &circulationFixture{
		ledger: l,
		cmds:   commands.NewCirculationCommands(l.UoW, l.Clock, l.IDs, l.Logger),
		q:      queries.NewTransactionQueries(l.UoW, l.Clock),
	}
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario E: borrow of an uncatalogued book becomes an active loan", func(t *testing.T) {
		f := newCirculationFixture(t)

		_, err := f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().
			WithUser("U1", "Una").WithBook("Quiet", "Q1").Fields)
		require.NoError(t, err)

		loans, err := f.q.GetActiveLoans(ctx)
		require.NoError(t, err)
		require.Len(t, loans, 1)
		assert.Equal(t, "U1", loans[0].Borrow.UserID())
		assert.Equal(t, dbtest.Epoch.Add(transaction.LoanPeriod), loans[0].DueAt)
		assert.False(t, loans[0].Overdue)

		f.ledger.Clock.Add(transaction.LoanPeriod)
		loans, err = f.q.GetActiveLoans(ctx)
		require.NoError(t, err)
		assert.False(t, loans[0].Overdue, "due exactly now is not yet overdue")

		f.ledger.Clock.Add(time.Second)
		loans, err = f.q.GetActiveLoans(ctx)
		require.NoError(t, err)
		assert.True(t, loans[0].Overdue)

		// catalog is untouched by unknown codes
		for _, b := range f.ledger.Books(t) {
			assert.True(t, b.Available())
		}
	})

	t.Run("log is kept most recent first", func(t *testing.T) {
		f := newCirculationFixture(t)

		first, err := f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().Fields)
		require.NoError(t, err)
		f.ledger.Clock.Add(time.Minute)
		second, err := f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().AsReturn().Fields)
		require.NoError(t, err)

		log, err := f.q.GetTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, log, 2)
		assert.Equal(t, second.ID(), log[0].ID())
		assert.Equal(t, first.ID(), log[1].ID())
		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("borrow holds a catalog book and return releases it", func(t *testing.T) {
		f := newCirculationFixture(t)

		_, err := f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().WithBook("Venus", "book-venus").Fields)
		require.NoError(t, err)
		assert.False(t, f.ledger.Book(t, 1).Available())

		f.ledger.Clock.Add(time.Hour)
		_, err = f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().AsReturn().Fields)
		require.NoError(t, err)
		assert.True(t, f.ledger.Book(t, 1).Available())
	})

	t.Run("return keeps a book another borrower still has", func(t *testing.T) {
		f := newCirculationFixture(t)

		_, err := f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().Fields)
		require.NoError(t, err)
		f.ledger.Clock.Add(time.Hour)
		_, err = f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().WithUser("2", "Francis Polosco").Fields)
		require.NoError(t, err)
		f.ledger.Clock.Add(time.Hour)
		_, err = f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().AsReturn().Fields)
		require.NoError(t, err)

		assert.False(t, f.ledger.Book(t, 1).Available())
	})

	t.Run("unknown type is rejected and nothing is written", func(t *testing.T) {
		f := newCirculationFixture(t)
		before := f.ledger.Snapshot()

		fields := builder.NewTransactionBuilder().Fields
		fields.Type = transaction.ParseType("renew")
		_, err := f.cmds.AddTransaction(ctx, fields)

		require.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Equal(t, before, f.ledger.Snapshot())
	})
}

func TestClearTransactions(t *testing.T) {
	ctx := context.Background()
	f := newCirculationFixture(t)
	ledger := commands.NewLedgerCommands(f.ledger.UoW, f.ledger.Clock, f.ledger.IDs, f.ledger.Logger)

	_, err := f.cmds.AddTransaction(ctx, builder.NewTransactionBuilder().Fields)
	require.NoError(t, err)
	_, err = ledger.ReserveBook(ctx, "a@x.com", 2)
	require.NoError(t, err)

	require.NoError(t, f.cmds.ClearTransactions(ctx))

	log, err := f.q.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
	assert.True(t, f.ledger.Book(t, 1).Available(), "only the loan held book 1")
	assert.False(t, f.ledger.Book(t, 2).Available(), "the reservation still holds book 2")
}
