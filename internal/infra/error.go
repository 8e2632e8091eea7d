package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"library-ledger/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindEncodeFailure RepositoryErrorKind = "ENCODE_FAILURE"
)

// RepositoryError reports a failed table access. The cause keeps its marks,
// so errs.Is still finds ErrDatabaseOperationFailed behind it.
type RepositoryError struct {
	Kind  RepositoryErrorKind
	Op    string
	Table string
	err   error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Table, e.err)
}

func (e *RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure once, at the layer that saw it, and returns
// it classified.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, op, table string, err error) error {
	if err == nil {
		return nil
	}
	logger.Error("repository operation failed",
		slog.String("kind", string(kind)),
		slog.String("op", op),
		slog.String("table", table),
		slog.String("error", err.Error()),
	)
	return &RepositoryError{Kind: kind, Op: op, Table: table, err: errs.Wrapf(err, "%s %s", op, table)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e *RepositoryError
	return errors.As(err, &e) && e.Kind == kind
}
