//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/queries"
	"library-ledger/internal/usecase/shared"
	"library-ledger/tests/common/builder"
	"library-ledger/tests/common/dbtest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*dbtest.Ledger, commands.CatalogCommands, queries.CatalogQueries) {
	l := dbtest.NewLedger(t)
	return l,
		commands.NewCatalogCommands(l.UoW, l.Logger),
		queries.NewCatalogQueries(l.UoW, l.Clock, l.Logger)
}

func TestAddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario A: first book gets id 1 and is available", func(t *testing.T) {
		_, cmds, _ := newCatalog(t)

		b, err := cmds.AddBook(ctx, book.Fields{Title: "X", Author: "Y"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), b.ID())
		assert.True(t, b.Available())
	})

	t.Run("round trip keeps every field", func(t *testing.T) {
		_, cmds, q := newCatalog(t)
		fields := builder.NewBookBuilder().Fields

		added, err := cmds.AddBook(ctx, fields)
		require.NoError(t, err)

		got, err := q.GetBookByID(ctx, added.ID())
		require.NoError(t, err)
		if diff := cmp.Diff(fields, got.Fields()); diff != "" {
			t.Errorf("stored fields mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, got.Available())
	})

	t.Run("ids continue from the highest stored id", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		l.SeedBooks(t, dbtest.StoredBook(3, "A", ""), dbtest.StoredBook(7, "B", ""))

		b, err := cmds.AddBook(ctx, book.Fields{Title: "C", Author: "Z"})

		require.NoError(t, err)
		assert.Equal(t, int64(8), b.ID())
		assert.Len(t, l.Books(t), 3)
	})

	t.Run("blank author is rejected and nothing is written", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		before := l.Snapshot()

		_, err := cmds.AddBook(ctx, book.Fields{Title: "X", Author: "   "})

		require.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Equal(t, before, l.Snapshot())
	})

	t.Run("a QR code already in the catalog is rejected whatever its case", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		_, err := cmds.AddBook(ctx, book.Fields{Title: "Quiet", Author: "Cain", QR: "Q1"})
		require.NoError(t, err)
		before := l.Snapshot()

		_, err = cmds.AddBook(ctx, book.Fields{Title: "Quiet (copy)", Author: "Cain", QR: " q1 "})

		require.ErrorIs(t, err, book.ErrDuplicateQR)
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Equal(t, before, l.Snapshot())
	})

	t.Run("books without a QR code never collide", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		for range 2 {
			_, err := cmds.AddBook(ctx, book.Fields{Title: "Untagged", Author: "Anon"})
			require.NoError(t, err)
		}
		assert.Len(t, l.Books(t), 2)
	})

	t.Run("a borrow holds the only book carrying its code", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		circulation := commands.NewCirculationCommands(l.UoW, l.Clock, l.IDs, l.Logger)
		_, err := cmds.AddBook(ctx, book.Fields{Title: "Quiet", Author: "Cain", QR: "Q1"})
		require.NoError(t, err)
		_, err = cmds.AddBook(ctx, book.Fields{Title: "Quiet (copy)", Author: "Cain", QR: "q1"})
		require.Error(t, err)
		_, err = cmds.AddBook(ctx, book.Fields{Title: "Loud", Author: "Cain", QR: "Q2"})
		require.NoError(t, err)

		_, err = circulation.AddTransaction(ctx, builder.NewTransactionBuilder().WithBook("Quiet", "Q1").Fields)
		require.NoError(t, err)

		books := l.Books(t)
		require.Len(t, books, 2)
		assert.False(t, l.Book(t, 1).Available(), "borrowed book is held")
		assert.True(t, l.Book(t, 2).Available(), "a different code is untouched")
	})

	t.Run("a corrupt books table reads as empty and is replaced on write", func(t *testing.T) {
		l, cmds, q := newCatalog(t)
		l.Medium.SetRaw(recordstore.TableBooks, []byte("{not json"))

		books, err := q.GetBooks(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)

		b, err := cmds.AddBook(ctx, book.Fields{Title: "X", Author: "Y"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), b.ID())
		assert.Len(t, l.Books(t), 1)
	})
}

func TestCatalogLookups(t *testing.T) {
	ctx := context.Background()
	l, _, q := newCatalog(t)
	l.SeedBooks(t, dbtest.StoredBook(1, "Venus", "BOOK-VENUS"), dbtest.StoredBook(2, "Untagged", ""))

	t.Run("GetBookByID reports a missing book", func(t *testing.T) {
		_, err := q.GetBookByID(ctx, 42)
		require.ErrorIs(t, err, shared.ErrBookNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("FindBookByQR ignores case and surrounding spaces", func(t *testing.T) {
		b, err := q.FindBookByQR(ctx, "  book-venus ")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, int64(1), b.ID())
	})

	t.Run("FindBookByQR returns nil when nothing matches", func(t *testing.T) {
		for _, code := range []string{"BOOK-MARS", "", "   "} {
			b, err := q.FindBookByQR(ctx, code)
			require.NoError(t, err)
			assert.Nil(t, b, "code %q", code)
		}
	})
}

func TestImportBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("imports rows with title and author and skips the rest", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		l.SeedBooks(t, dbtest.StoredBook(4, "Existing", ""))
		csv := strings.Join([]string{
			"Title, AUTHOR ,Year,QR,Shelf",
			"Venus,Sally MacEachern,2004,BOOK-VENUS,A1",
			",No Title,2001,,",
			"",
			"Taste and Smell,Sally MacEachern,not-a-year,,B2",
			"No Author,,1999,,",
		}, "\n")

		res, err := cmds.ImportBooks(ctx, strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 2, res.Skipped)
		require.Len(t, res.Imported, 2)
		assert.Equal(t, int64(5), res.Imported[0].ID())
		assert.Equal(t, int64(6), res.Imported[1].ID())
		assert.Equal(t, 2004, res.Imported[0].Year())
		assert.Equal(t, "BOOK-VENUS", res.Imported[0].QR())
		assert.Equal(t, 0, res.Imported[1].Year())
		assert.Len(t, l.Books(t), 3)
	})

	t.Run("rows repeating a catalogued or earlier QR code are skipped", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		l.SeedBooks(t, dbtest.StoredBook(1, "Venus", "BOOK-VENUS"))
		csv := strings.Join([]string{
			"title,author,qr",
			"Venus again,Sally MacEachern,book-venus",
			"Taste and Smell,Sally MacEachern,BOOK-TASTE",
			"Taste twice,Sally MacEachern,Book-Taste",
		}, "\n")

		res, err := cmds.ImportBooks(ctx, strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 2, res.Skipped)
		require.Len(t, res.Imported, 1)
		assert.Equal(t, "BOOK-TASTE", res.Imported[0].QR())
		assert.Len(t, l.Books(t), 2)
	})

	t.Run("header without author is rejected", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)
		before := l.Snapshot()

		_, err := cmds.ImportBooks(ctx, strings.NewReader("title,year\nVenus,2004\n"))

		require.ErrorIs(t, err, commands.ErrImportHeader)
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Equal(t, before, l.Snapshot())
	})

	t.Run("empty input imports nothing", func(t *testing.T) {
		l, cmds, _ := newCatalog(t)

		res, err := cmds.ImportBooks(ctx, strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, res.Imported)
		assert.Zero(t, res.Skipped)
		assert.Empty(t, l.Snapshot())
	})
}
