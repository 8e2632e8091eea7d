package repository

import (
	"log/slog"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository/converter"
)

// AttendanceRepository stores the visitor log most-recent-first.
type AttendanceRepository struct {
	tableRepo[converter.LogRecord, *attendance.Entry]
}

func NewAttendanceRepository(tables *recordstore.Tables, logger *slog.Logger) *AttendanceRepository {
	return &AttendanceRepository{tableRepo[converter.LogRecord, *attendance.Entry]{
		tables:   tables,
		logger:   logger,
		name:     recordstore.TableLogs,
		toEntity: converter.LogFromRecord,
		toRecord: converter.LogToRecord,
	}}
}
