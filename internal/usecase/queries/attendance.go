package queries

import (
	"context"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/usecase/shared"
)

type AttendanceQueries interface {
	// GetLogs returns the visitor log most-recent-first.
	GetLogs(ctx context.Context) ([]*attendance.Entry, error)
}

type attendanceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAttendanceQueries(uow shared.UnitOfWork) AttendanceQueries {
	return &attendanceQueriesImpl{uow: uow}
}

func (q *attendanceQueriesImpl) GetLogs(ctx context.Context) ([]*attendance.Entry, error) {
	var entries []*attendance.Entry
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		entries, err = tx.Logs().List(ctx)
		return err
	})
	return entries, err
}
