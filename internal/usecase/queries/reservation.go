package queries

import (
	"context"
	"log/slog"
	"strings"

	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/usecase/shared"
)

type ReservationQueries interface {
	// GetReservationsForUser sweeps expired reservations, then lists the
	// caller's remaining ones in the order they were made.
	GetReservationsForUser(ctx context.Context, userEmail string) ([]*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationQueries(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, clock: clock, logger: logger}
}

func (q *reservationQueriesImpl) GetReservationsForUser(ctx context.Context, userEmail string) ([]*reservation.Reservation, error) {
	email := strings.TrimSpace(userEmail)

	var (
		mine  []*reservation.Reservation
		swept int
	)
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mine = []*reservation.Reservation{}

		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}
		swept = len(state.Sweep(q.clock.Now()))
		if err := state.Flush(ctx, tx); err != nil {
			return err
		}
		for _, r := range state.Reservations {
			if r.OwnedBy(email) {
				mine = append(mine, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if swept > 0 {
		q.logger.Info("expired reservations swept", slog.Int("count", swept))
	}
	return mine, nil
}
