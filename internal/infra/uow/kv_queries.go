package uow

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
)

const (
	kvTable         = "ledger_tables"
	colName         = "name"
	colPayload      = "payload"
	colUpdatedAt    = "updated_at"
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// kvQueries builds the three statements a record session needs. Writes are
// delete + insert so the same SQL works on every dialect.
type kvQueries struct {
	dialect goqu.DialectWrapper
}

func newKVQueries(dialect string) kvQueries {
	return kvQueries{dialect: goqu.Dialect(dialect)}
}

func (q kvQueries) selectPayload(table string) (string, []any, error) {
	return q.dialect.
		From(kvTable).
		Select(colPayload).
		Where(goqu.C(colName).Eq(table)).
		Prepared(true).
		ToSQL()
}

func (q kvQueries) deleteTable(table string) (string, []any, error) {
	return q.dialect.
		Delete(kvTable).
		Where(goqu.C(colName).Eq(table)).
		Prepared(true).
		ToSQL()
}

func (q kvQueries) insertTable(table string, payload []byte, now time.Time) (string, []any, error) {
	return q.dialect.
		Insert(kvTable).
		Rows(goqu.Record{
			colName:      table,
			colPayload:   string(payload),
			colUpdatedAt: now.UTC(),
		}).
		Prepared(true).
		ToSQL()
}
