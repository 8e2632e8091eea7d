//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResetDB empties the ledger between e2e subtests.
func ResetDB(db DBLike) error {
	_, err := db.Exec(context.Background(), "TRUNCATE ledger_tables")
	return err
}

// RawTable reads a table payload directly, bypassing the record store.
func RawTable(db DBLike, name string) (string, error) {
	var payload string
	err := db.QueryRow(context.Background(), "SELECT payload FROM ledger_tables WHERE name = $1", name).Scan(&payload)
	return payload, err
}
