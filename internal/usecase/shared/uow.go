package shared

import (
	"context"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/domain/user"
)

type UnitOfWork interface {
	// Within runs fn as one serializable unit over every table.
	// Nothing fn writes is persisted when it returns an error.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Books() BookRepository
	Reservations() ReservationRepository
	Transactions() TransactionRepository
	Users() UserRepository
	Logs() AttendanceRepository
}

// Repositories read and replace whole tables; ordering is preserved.

type BookRepository interface {
	List(ctx context.Context) ([]*book.Book, error)
	SaveAll(ctx context.Context, books []*book.Book) error
}

type ReservationRepository interface {
	List(ctx context.Context) ([]*reservation.Reservation, error)
	SaveAll(ctx context.Context, reservations []*reservation.Reservation) error
}

// TransactionRepository keeps the log most-recent-first.
type TransactionRepository interface {
	List(ctx context.Context) ([]*transaction.Transaction, error)
	SaveAll(ctx context.Context, log []*transaction.Transaction) error
}

type UserRepository interface {
	List(ctx context.Context) ([]*user.User, error)
	SaveAll(ctx context.Context, users []*user.User) error
}

// AttendanceRepository keeps the log most-recent-first.
type AttendanceRepository interface {
	List(ctx context.Context) ([]*attendance.Entry, error)
	SaveAll(ctx context.Context, entries []*attendance.Entry) error
}
