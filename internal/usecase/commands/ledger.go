package commands

import (
	"context"
	"log/slog"
	"strings"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/pkg/idgen"
	"library-ledger/internal/usecase/shared"
)

type LedgerCommands interface {
	ReserveBook(ctx context.Context, userEmail string, bookID int64) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int64, userEmail string) error
	CleanupExpiredReservations(ctx context.Context) (int, error)
}

type ledgerCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	ids    idgen.Generator
	logger *slog.Logger
}

func NewLedgerCommands(uow shared.UnitOfWork, clock clock.Clock, ids idgen.Generator, logger *slog.Logger) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:    uow,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

// ReserveBook holds a book for userEmail for reservation.Window. Expired
// reservations are swept first so a hold that just lapsed no longer blocks
// the book.
func (c *ledgerCommandsImpl) ReserveBook(ctx context.Context, userEmail string, bookID int64) (*reservation.Reservation, error) {
	email, err := reservation.NormalizeEmail(userEmail)
	if err != nil {
		return nil, err
	}
	if bookID <= 0 {
		return nil, reservation.ErrInvalidBookID
	}

	var (
		created  *reservation.Reservation
		rejected error
		swept    int
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, rejected, swept = nil, nil, 0
		now := c.clock.Now()

		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}
		swept = len(state.Sweep(now))

		// a rejected request still commits the sweep; the reservation itself writes nothing
		target, ok := book.FindByID(state.Books, bookID)
		switch {
		case !ok:
			rejected = errs.Wrapf(shared.ErrBookNotFound, "book %d", bookID)
		case reservation.HeldBy(state.Reservations, email, bookID, now):
			rejected = errs.Wrapf(shared.ErrAlreadyReserved, "book %d", bookID)
		case !target.Available():
			rejected = errs.Wrapf(shared.ErrBookUnavailable, "book %d", bookID)
		}
		if rejected != nil {
			return state.Flush(ctx, tx)
		}

		id := c.ids.Next(now, func(id int64) bool {
			return containsReservation(state.Reservations, id)
		})
		r, err := reservation.New(id, email, bookID, now)
		if err != nil {
			return err
		}
		state.AddReservation(r)
		state.Hold(target)

		if err := state.Flush(ctx, tx); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if swept > 0 {
		c.logger.Info("expired reservations swept", slog.Int("count", swept))
	}
	if rejected != nil {
		return nil, rejected
	}

	c.logger.Info("reservation created",
		slog.Int64("reservation_id", created.ID()),
		slog.Int64("book_id", bookID),
		slog.String("user_email", email))
	return created, nil
}

func (c *ledgerCommandsImpl) CancelReservation(ctx context.Context, reservationID int64, userEmail string) error {
	email := normalizeOwner(userEmail)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}

		var owned *reservation.Reservation
		for _, r := range state.Reservations {
			if r.ID() == reservationID && r.OwnedBy(email) {
				owned = r
				break
			}
		}
		if owned == nil {
			return errs.Wrapf(shared.ErrReservationNotFound, "reservation %d", reservationID)
		}

		state.RemoveReservation(owned.ID())
		state.Release(owned.BookID(), now)
		return state.Flush(ctx, tx)
	})
	if err != nil {
		return err
	}

	c.logger.Info("reservation cancelled",
		slog.Int64("reservation_id", reservationID),
		slog.String("user_email", email))
	return nil
}

func (c *ledgerCommandsImpl) CleanupExpiredReservations(ctx context.Context) (int, error) {
	var swept int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}
		swept = len(state.Sweep(c.clock.Now()))
		return state.Flush(ctx, tx)
	})
	if err != nil {
		return 0, err
	}
	if swept > 0 {
		c.logger.Info("expired reservations swept", slog.Int("count", swept))
	}
	return swept, nil
}

func containsReservation(all []*reservation.Reservation, id int64) bool {
	for _, r := range all {
		if r.ID() == id {
			return true
		}
	}
	return false
}

// normalizeOwner only trims: an address that fails validation simply owns nothing.
func normalizeOwner(email string) string {
	return strings.TrimSpace(email)
}
