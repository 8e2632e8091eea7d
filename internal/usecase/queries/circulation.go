package queries

import (
	"context"

	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/usecase/shared"
)

type TransactionQueries interface {
	// GetTransactions returns the log most-recent-first.
	GetTransactions(ctx context.Context) ([]*transaction.Transaction, error)
	// GetActiveLoans lists outstanding loans, earliest due date first.
	GetActiveLoans(ctx context.Context) ([]transaction.Loan, error)
}

type transactionQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTransactionQueries(uow shared.UnitOfWork, clock clock.Clock) TransactionQueries {
	return &transactionQueriesImpl{uow: uow, clock: clock}
}

func (q *transactionQueriesImpl) GetTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	var log []*transaction.Transaction
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		log, err = tx.Transactions().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (q *transactionQueriesImpl) GetActiveLoans(ctx context.Context) ([]transaction.Loan, error) {
	log, err := q.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return transaction.ActiveLoans(log, q.clock.Now()), nil
}
