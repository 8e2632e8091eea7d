//go:build unit || e2e

package builder

import (
	"time"

	"library-ledger/internal/domain/transaction"
	reqdto "library-ledger/internal/handler/dto/request"
)

type TransactionBuilder struct {
	ID        int64
	Fields    transaction.Fields
	Timestamp time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID: 1,
		Fields: transaction.Fields{
			Type:      transaction.TypeBorrow,
			UserName:  "Gerald Venico",
			UserID:    "1",
			BookTitle: "Venus",
			BookQR:    "BOOK-VENUS",
		},
		Timestamp: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) BuildStored() *transaction.Transaction {
	return transaction.Reconstruct(b.ID, b.Fields, b.Timestamp)
}

func (b *TransactionBuilder) BuildCreateRequestDTO() reqdto.CreateTransactionRequest {
	return reqdto.CreateTransactionRequest{
		Type:      b.Fields.Type.String(),
		UserName:  b.Fields.UserName,
		UserID:    b.Fields.UserID,
		BookTitle: b.Fields.BookTitle,
		BookQR:    b.Fields.BookQR,
	}
}

// Fluent builder methods
func (b *TransactionBuilder) WithID(id int64) *TransactionBuilder {
	b.ID = id
	return b
}

func (b *TransactionBuilder) AsReturn() *TransactionBuilder {
	b.Fields.Type = transaction.TypeReturn
	return b
}

func (b *TransactionBuilder) WithUser(id, name string) *TransactionBuilder {
	b.Fields.UserID = id
	b.Fields.UserName = name
	return b
}

func (b *TransactionBuilder) WithBook(title, qr string) *TransactionBuilder {
	b.Fields.BookTitle = title
	b.Fields.BookQR = qr
	return b
}

func (b *TransactionBuilder) At(ts time.Time) *TransactionBuilder {
	b.Timestamp = ts
	return b
}
