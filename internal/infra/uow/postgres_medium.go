package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	// two units creating the same table row race on the primary key
	pgErrCodeUniqueViolation = "23505"

	defaultMaxRetries = 3
	defaultRetryBase  = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PostgresMedium runs every unit as a SERIALIZABLE transaction and replays it
// on serialization failures and deadlocks.
type PostgresMedium struct {
	pool       *pgxpool.Pool
	logger     *slog.Logger
	q          kvQueries
	maxRetries int
	base       time.Duration
}

func NewPostgresMedium(pool *pgxpool.Pool, logger *slog.Logger) *PostgresMedium {
	return &PostgresMedium{
		pool:       pool,
		logger:     logger,
		q:          newKVQueries(dialectPostgres),
		maxRetries: defaultMaxRetries,
		base:       defaultRetryBase,
	}
}

func (m *PostgresMedium) Atomically(ctx context.Context, fn func(ctx context.Context, s recordstore.Session) error) error {
	return m.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (m *PostgresMedium) Close() error {
	m.pool.Close()
	return nil
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (m *PostgresMedium) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, s recordstore.Session) error) error {
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		pgxTx, err := m.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgSession{tx: pgxTx, q: m.q})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				m.logger.Warn("rollback failed",
					slog.Int("attempt", attempt+1),
					slog.String("error", rollbackErr.Error()))
			}
		}

		if !shouldRetry(err, attempt, m.maxRetries) {
			if isRetryableError(err) && attempt == m.maxRetries {
				m.logger.Error("transaction failed after max retries",
					slog.Int("attempts", attempt+1),
					slog.String("error", err.Error()))
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, m.base)

		m.logger.Warn("retrying transaction due to retryable error",
			slog.Int("attempt", attempt+1),
			slog.Int64("wait_ms", waitTime.Milliseconds()),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeUniqueViolation:
		return true
	default:
		return false
	}
}

type pgSession struct {
	tx pgx.Tx
	q  kvQueries
}

func (s *pgSession) Get(ctx context.Context, table string) ([]byte, bool, error) {
	query, args, err := s.q.selectPayload(table)
	if err != nil {
		return nil, false, errs.Wrap(err, "build select")
	}

	var payload string
	if err := s.tx.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (s *pgSession) Put(ctx context.Context, table string, payload []byte) error {
	del, delArgs, err := s.q.deleteTable(table)
	if err != nil {
		return errs.Wrap(err, "build delete")
	}
	ins, insArgs, err := s.q.insertTable(table, payload, time.Now())
	if err != nil {
		return errs.Wrap(err, "build insert")
	}

	if _, err := s.tx.Exec(ctx, del, delArgs...); err != nil {
		return err
	}
	if _, err := s.tx.Exec(ctx, ins, insArgs...); err != nil {
		return err
	}
	return nil
}
