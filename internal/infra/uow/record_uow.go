package uow

import (
	"context"
	"log/slog"

	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository"
	"library-ledger/internal/usecase/shared"
)

// RecordUoW opens one medium unit per call and hands out table repositories
// bound to it.
type RecordUoW struct {
	medium recordstore.Medium
	logger *slog.Logger
}

func NewRecordUoW(medium recordstore.Medium, logger *slog.Logger) *RecordUoW {
	return &RecordUoW{
		medium: medium,
		logger: logger,
	}
}

func (u *RecordUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.medium.Atomically(ctx, func(ctx context.Context, s recordstore.Session) error {
		return fn(ctx, &recordTx{
			tables: recordstore.NewTables(s, u.logger),
			logger: u.logger,
		})
	})
}

type recordTx struct {
	tables *recordstore.Tables
	logger *slog.Logger

	// Lazy-initialized repositories
	bookRepo        shared.BookRepository
	reservationRepo shared.ReservationRepository
	transactionRepo shared.TransactionRepository
	userRepo        shared.UserRepository
	logRepo         shared.AttendanceRepository
}

func (t *recordTx) Books() shared.BookRepository {
	if t.bookRepo == nil {
		t.bookRepo = repository.NewBookRepository(t.tables, t.logger)
	}
	return t.bookRepo
}

func (t *recordTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.tables, t.logger)
	}
	return t.reservationRepo
}

func (t *recordTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.tables, t.logger)
	}
	return t.transactionRepo
}

func (t *recordTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.tables, t.logger)
	}
	return t.userRepo
}

func (t *recordTx) Logs() shared.AttendanceRepository {
	if t.logRepo == nil {
		t.logRepo = repository.NewAttendanceRepository(t.tables, t.logger)
	}
	return t.logRepo
}
