package commands

import (
	"context"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/idgen"
	"library-ledger/internal/usecase/shared"
)

type AttendanceCommands interface {
	SaveLog(ctx context.Context, fields attendance.Fields) (*attendance.Entry, error)
	ClearLogs(ctx context.Context) error
}

type attendanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ids   idgen.Generator
}

func NewAttendanceCommands(uow shared.UnitOfWork, clock clock.Clock, ids idgen.Generator) AttendanceCommands {
	return &attendanceCommandsImpl{uow: uow, clock: clock, ids: ids}
}

// SaveLog prepends a visitor entry; status and action default to Guest / Time In.
func (c *attendanceCommandsImpl) SaveLog(ctx context.Context, fields attendance.Fields) (*attendance.Entry, error) {
	now := c.clock.Now()
	if _, err := attendance.New(0, fields, now); err != nil {
		return nil, err
	}

	var saved *attendance.Entry
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Logs().List(ctx)
		if err != nil {
			return err
		}
		id := c.ids.Next(now, func(id int64) bool {
			for _, e := range entries {
				if e.ID() == id {
					return true
				}
			}
			return false
		})
		e, err := attendance.New(id, fields, now)
		if err != nil {
			return err
		}
		if err := tx.Logs().SaveAll(ctx, append([]*attendance.Entry{e}, entries...)); err != nil {
			return err
		}
		saved = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *attendanceCommandsImpl) ClearLogs(ctx context.Context) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Logs().SaveAll(ctx, nil)
	})
}
