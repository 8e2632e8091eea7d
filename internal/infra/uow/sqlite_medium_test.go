//go:build unit

package uow_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/infra/db"
	"library-ledger/internal/infra/uow"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLiteUoW(t *testing.T, path string) *uow.RecordUoW {
	t.Helper()
	return openSQLiteUoWLogging(t, path, slog.New(slog.DiscardHandler))
}

// openSQLiteUoWLogging hands mediumLogger to the medium only, so a test can
// see exactly what the medium reports.
func openSQLiteUoWLogging(t *testing.T, path string, mediumLogger *slog.Logger) *uow.RecordUoW {
	t.Helper()
	conn, cleanup, err := db.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return uow.NewRecordUoW(uow.NewSQLiteMedium(conn, mediumLogger), slog.New(slog.DiscardHandler))
}

func listBooks(t *testing.T, u shared.UnitOfWork) []*book.Book {
	t.Helper()
	var out []*book.Book
	require.NoError(t, u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = tx.Books().List(ctx)
		return err
	}))
	return out
}

func TestSQLiteMedium_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.db")

	first := openSQLiteUoW(t, path)
	require.NoError(t, first.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Books().SaveAll(ctx, []*book.Book{
			book.Reconstruct(1, book.Fields{Title: "Venus", Author: "Sally MacEachern", QR: "BOOK-VENUS"}, false),
		})
	}))

	second := openSQLiteUoW(t, path)
	books := listBooks(t, second)

	require.Len(t, books, 1)
	assert.Equal(t, "Venus", books[0].Title())
	assert.False(t, books[0].Available())
}

func TestSQLiteMedium_RollsBackFailedUnit(t *testing.T) {
	u := openSQLiteUoW(t, filepath.Join(t.TempDir(), "ledger.db"))
	boom := errs.New("boom")

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Books().SaveAll(ctx, []*book.Book{
			book.Reconstruct(1, book.Fields{Title: "Venus", Author: "A"}, true),
		}); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Empty(t, listBooks(t, u))
}

func TestSQLiteMedium_LogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	u := openSQLiteUoWLogging(t, filepath.Join(t.TempDir(), "ledger.db"), logger)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return errs.New("boom")
	})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "unit rolled back")
	assert.Contains(t, buf.String(), "boom")
}

func TestSQLiteMedium_OverwritesWholeTable(t *testing.T) {
	u := openSQLiteUoW(t, filepath.Join(t.TempDir(), "ledger.db"))
	save := func(books ...*book.Book) {
		require.NoError(t, u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			return tx.Books().SaveAll(ctx, books)
		}))
	}

	save(
		book.Reconstruct(1, book.Fields{Title: "One", Author: "A"}, true),
		book.Reconstruct(2, book.Fields{Title: "Two", Author: "A"}, true),
	)
	save(book.Reconstruct(3, book.Fields{Title: "Three", Author: "A"}, true))

	books := listBooks(t, u)
	require.Len(t, books, 1)
	assert.Equal(t, int64(3), books[0].ID())
}
