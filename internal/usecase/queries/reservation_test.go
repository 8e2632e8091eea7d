//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/usecase/queries"
	"library-ledger/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReservationsForUser(t *testing.T) {
	ctx := context.Background()
	l := dbtest.NewLedger(t)
	l.SeedBooks(t,
		book.Reconstruct(1, book.Fields{Title: "One", Author: "A"}, false),
		book.Reconstruct(2, book.Fields{Title: "Two", Author: "A"}, false),
		book.Reconstruct(3, book.Fields{Title: "Three", Author: "A"}, false),
	)
	l.SeedReservations(t,
		reservation.Reconstruct(10, "a@x.com", 1, dbtest.Epoch, dbtest.Epoch.Add(reservation.Window)),
		reservation.Reconstruct(11, "b@x.com", 2, dbtest.Epoch, dbtest.Epoch.Add(reservation.Window)),
		reservation.Reconstruct(12, "a@x.com", 3, dbtest.Epoch.Add(-25*time.Hour), dbtest.Epoch.Add(-time.Hour)),
	)
	q := queries.NewReservationQueries(l.UoW, l.Clock, l.Logger)

	mine, err := q.GetReservationsForUser(ctx, " a@x.com ")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(10), mine[0].ID())

	// the expired entry was swept and its book released
	assert.Len(t, l.Reservations(t), 2)
	assert.True(t, l.Book(t, 3).Available())
	assert.False(t, l.Book(t, 1).Available())

	none, err := q.GetReservationsForUser(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
