package repository

import (
	"log/slog"

	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository/converter"
)

// TransactionRepository stores the circulation log most-recent-first.
type TransactionRepository struct {
	tableRepo[converter.TransactionRecord, *transaction.Transaction]
}

func NewTransactionRepository(tables *recordstore.Tables, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{tableRepo[converter.TransactionRecord, *transaction.Transaction]{
		tables:   tables,
		logger:   logger,
		name:     recordstore.TableTransactions,
		toEntity: converter.TransactionFromRecord,
		toRecord: converter.TransactionToRecord,
	}}
}
