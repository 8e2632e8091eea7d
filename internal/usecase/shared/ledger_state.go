package shared

import (
	"context"
	"slices"
	"time"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/domain/transaction"
)

// LedgerState is the in-unit view of the three tables that decide whether a
// book is available. Mutations stay in memory until Flush.
type LedgerState struct {
	Books        []*book.Book
	Reservations []*reservation.Reservation
	Log          []*transaction.Transaction

	booksDirty        bool
	reservationsDirty bool
	logDirty          bool
}

func LoadLedger(ctx context.Context, tx Tx) (*LedgerState, error) {
	books, err := tx.Books().List(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := tx.Reservations().List(ctx)
	if err != nil {
		return nil, err
	}
	log, err := tx.Transactions().List(ctx)
	if err != nil {
		return nil, err
	}
	return &LedgerState{Books: books, Reservations: reservations, Log: log}, nil
}

// Sweep removes every reservation that has expired at now and releases the
// books they held. Expired reservations are all removed before any book is
// released, so a book held by two expired entries is freed.
func (s *LedgerState) Sweep(now time.Time) []*reservation.Reservation {
	active, expired := reservation.Partition(s.Reservations, now)
	if len(expired) == 0 {
		return nil
	}

	s.Reservations = active
	s.reservationsDirty = true
	for _, r := range expired {
		s.Release(r.BookID(), now)
	}
	return expired
}

// Release makes a book available unless an active reservation or an
// outstanding loan still holds it. Unknown ids and already available books
// are left alone.
func (s *LedgerState) Release(bookID int64, now time.Time) bool {
	b, ok := book.FindByID(s.Books, bookID)
	if !ok || b.Available() {
		return false
	}
	if reservation.HoldsBook(s.Reservations, bookID, 0, now) {
		return false
	}
	if transaction.HasOutstanding(s.Log, b.QR(), now) {
		return false
	}
	if b.Release() {
		s.booksDirty = true
		return true
	}
	return false
}

func (s *LedgerState) Hold(b *book.Book) {
	if b.Hold() {
		s.booksDirty = true
	}
}

func (s *LedgerState) AddReservation(r *reservation.Reservation) {
	s.Reservations = append(s.Reservations, r)
	s.reservationsDirty = true
}

// RemoveReservation drops the reservation with id and returns it.
func (s *LedgerState) RemoveReservation(id int64) (*reservation.Reservation, bool) {
	idx := slices.IndexFunc(s.Reservations, func(r *reservation.Reservation) bool { return r.ID() == id })
	if idx < 0 {
		return nil, false
	}
	removed := s.Reservations[idx]
	s.Reservations = slices.Delete(s.Reservations, idx, idx+1)
	s.reservationsDirty = true
	return removed, true
}

// Prepend adds a transaction at the head of the most-recent-first log.
func (s *LedgerState) Prepend(t *transaction.Transaction) {
	s.Log = append([]*transaction.Transaction{t}, s.Log...)
	s.logDirty = true
}

func (s *LedgerState) ClearLog() {
	s.Log = []*transaction.Transaction{}
	s.logDirty = true
}

// ReleaseAll re-evaluates every unavailable book.
func (s *LedgerState) ReleaseAll(now time.Time) {
	for _, b := range s.Books {
		if !b.Available() {
			s.Release(b.ID(), now)
		}
	}
}

// Flush writes back only the tables that changed.
func (s *LedgerState) Flush(ctx context.Context, tx Tx) error {
	if s.reservationsDirty {
		if err := tx.Reservations().SaveAll(ctx, s.Reservations); err != nil {
			return err
		}
	}
	if s.booksDirty {
		if err := tx.Books().SaveAll(ctx, s.Books); err != nil {
			return err
		}
	}
	if s.logDirty {
		if err := tx.Transactions().SaveAll(ctx, s.Log); err != nil {
			return err
		}
	}
	s.booksDirty, s.reservationsDirty, s.logDirty = false, false, false
	return nil
}

// AvailableBooks lists the books currently flagged available, in catalog order.
func (s *LedgerState) AvailableBooks() []*book.Book {
	out := make([]*book.Book, 0, len(s.Books))
	for _, b := range s.Books {
		if b.Available() {
			out = append(out, b)
		}
	}
	return out
}
