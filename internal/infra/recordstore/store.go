// Package recordstore maps table names to ordered sequences of JSON records
// kept on a key-value medium. Whole tables are read and replaced at once.
package recordstore

import (
	"context"
	"log/slog"

	"library-ledger/internal/pkg/errs"

	jsoniter "github.com/json-iterator/go"
)

// Logical table names.
const (
	TableUsers        = "users"
	TableBooks        = "books"
	TableReservations = "reservations"
	TableTransactions = "transactions"
	TableLogs         = "logs"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is the view of a medium inside one atomic unit.
type Session interface {
	// Get returns the raw payload of a table; found is false when it was never written.
	Get(ctx context.Context, table string) (payload []byte, found bool, err error)
	Put(ctx context.Context, table string, payload []byte) error
}

// Medium runs fn as one atomic unit: either everything fn wrote is persisted
// or nothing is.
type Medium interface {
	Atomically(ctx context.Context, fn func(ctx context.Context, s Session) error) error
	Close() error
}

type Tables struct {
	session Session
	logger  *slog.Logger
}

func NewTables(session Session, logger *slog.Logger) *Tables {
	return &Tables{session: session, logger: logger}
}

// ReadTable never reports data problems: an absent table is empty and a
// corrupt one degrades to empty with a warning. Medium failures are returned.
func (t *Tables) ReadTable(ctx context.Context, name string) ([]jsoniter.RawMessage, error) {
	records, err := t.loadTable(ctx, name)
	if err != nil {
		if errs.Is(err, errs.ErrCorruptTable) {
			t.warnCorrupt(name, err)
			return []jsoniter.RawMessage{}, nil
		}
		return nil, err
	}
	return records, nil
}

func (t *Tables) loadTable(ctx context.Context, name string) ([]jsoniter.RawMessage, error) {
	payload, found, err := t.session.Get(ctx, name)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "read table %s", name), errs.ErrDatabaseOperationFailed)
	}
	if !found || len(payload) == 0 {
		return []jsoniter.RawMessage{}, nil
	}
	if !codec.Valid(payload) {
		return nil, errs.Wrapf(errs.ErrCorruptTable, "table %s: payload of %d bytes is not valid JSON", name, len(payload))
	}

	var records []jsoniter.RawMessage
	if err := codec.Unmarshal(payload, &records); err != nil {
		return nil, errs.Wrapf(errs.ErrCorruptTable, "table %s: payload is not an array: %v", name, err)
	}
	if records == nil {
		records = []jsoniter.RawMessage{}
	}
	return records, nil
}

// WriteTable replaces the entire table.
func (t *Tables) WriteTable(ctx context.Context, name string, records []jsoniter.RawMessage) error {
	if records == nil {
		records = []jsoniter.RawMessage{}
	}
	payload, err := codec.Marshal(records)
	if err != nil {
		return errs.Wrapf(err, "encode table %s", name)
	}
	if err := t.session.Put(ctx, name, payload); err != nil {
		return errs.Mark(errs.Wrapf(err, "write table %s", name), errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (t *Tables) warnCorrupt(name string, err error) {
	t.logger.Warn("corrupt table treated as empty",
		slog.String("table", name),
		slog.String("error", err.Error()))
}

// Read decodes every record of a table into T. A record that does not decode
// makes the whole table corrupt, which degrades to empty like ReadTable.
func Read[T any](ctx context.Context, t *Tables, name string) ([]T, error) {
	raw, err := t.ReadTable(ctx, name)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := codec.Unmarshal(r, &v); err != nil {
			t.warnCorrupt(name, errs.Wrapf(errs.ErrCorruptTable, "record %d: %v", i, err))
			return []T{}, nil
		}
		out = append(out, v)
	}
	return out, nil
}

// Write encodes records in order and replaces the table with them.
func Write[T any](ctx context.Context, t *Tables, name string, records []T) error {
	raw := make([]jsoniter.RawMessage, 0, len(records))
	for i, r := range records {
		b, err := codec.Marshal(r)
		if err != nil {
			return errs.Wrapf(err, "encode %s record %d", name, i)
		}
		raw = append(raw, b)
	}
	return t.WriteTable(ctx, name, raw)
}
