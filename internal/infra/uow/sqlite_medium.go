package uow

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

// SQLiteMedium keeps every table as one row of ledger_tables. The connection
// is opened with _txlock=immediate, so units never interleave their writes.
type SQLiteMedium struct {
	db     *sqlx.DB
	logger *slog.Logger
	q      kvQueries
}

func NewSQLiteMedium(db *sqlx.DB, logger *slog.Logger) *SQLiteMedium {
	return &SQLiteMedium{db: db, logger: logger, q: newKVQueries(dialectSQLite)}
}

func (m *SQLiteMedium) Atomically(ctx context.Context, fn func(ctx context.Context, s recordstore.Session) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err := fn(ctx, &sqliteSession{tx: tx, q: m.q}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			m.logger.Warn("rollback failed", slog.String("error", rollbackErr.Error()))
		} else {
			m.logger.Debug("unit rolled back", slog.String("cause", err.Error()))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}

type sqliteSession struct {
	tx *sqlx.Tx
	q  kvQueries
}

func (s *sqliteSession) Get(ctx context.Context, table string) ([]byte, bool, error) {
	query, args, err := s.q.selectPayload(table)
	if err != nil {
		return nil, false, errs.Wrap(err, "build select")
	}

	var payload string
	if err := s.tx.GetContext(ctx, &payload, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (s *sqliteSession) Put(ctx context.Context, table string, payload []byte) error {
	del, delArgs, err := s.q.deleteTable(table)
	if err != nil {
		return errs.Wrap(err, "build delete")
	}
	ins, insArgs, err := s.q.insertTable(table, payload, time.Now())
	if err != nil {
		return errs.Wrap(err, "build insert")
	}

	if _, err := s.tx.ExecContext(ctx, del, delArgs...); err != nil {
		return err
	}
	if _, err := s.tx.ExecContext(ctx, ins, insArgs...); err != nil {
		return err
	}
	return nil
}
