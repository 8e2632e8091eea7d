package response

import (
	"time"

	"library-ledger/internal/domain/transaction"
)

type TransactionResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	UserName    string    `json:"userName"`
	UserID      string    `json:"userId,omitempty"`
	UserAddress string    `json:"userAddress,omitempty"`
	BookTitle   string    `json:"bookTitle"`
	BookQR      string    `json:"bookQr,omitempty"`
	Author      string    `json:"author,omitempty"`
	Publisher   string    `json:"publisher,omitempty"`
	Year        int       `json:"year,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func FromTransaction(t *transaction.Transaction) *TransactionResponse {
	f := t.Fields()
	return &TransactionResponse{
		ID:          t.ID(),
		Type:        f.Type.String(),
		UserName:    f.UserName,
		UserID:      f.UserID,
		UserAddress: f.UserAddress,
		BookTitle:   f.BookTitle,
		BookQR:      f.BookQR,
		Author:      f.Author,
		Publisher:   f.Publisher,
		Year:        f.Year,
		Timestamp:   t.Timestamp(),
	}
}

func FromTransactions(log []*transaction.Transaction) []*TransactionResponse {
	res := make([]*TransactionResponse, len(log))
	for i, t := range log {
		res[i] = FromTransaction(t)
	}
	return res
}

type LoanResponse struct {
	TransactionID int64     `json:"transactionId"`
	UserName      string    `json:"userName"`
	UserID        string    `json:"userId,omitempty"`
	BookTitle     string    `json:"bookTitle"`
	BookQR        string    `json:"bookQr,omitempty"`
	BorrowedAt    time.Time `json:"borrowedAt"`
	DueAt         time.Time `json:"dueAt"`
	Overdue       bool      `json:"overdue"`
}

func FromLoans(loans []transaction.Loan) []*LoanResponse {
	res := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		res[i] = &LoanResponse{
			TransactionID: l.Borrow.ID(),
			UserName:      l.Borrow.UserName(),
			UserID:        l.Borrow.UserID(),
			BookTitle:     l.Borrow.BookTitle(),
			BookQR:        l.Borrow.BookQR(),
			BorrowedAt:    l.BorrowedAt,
			DueAt:         l.DueAt,
			Overdue:       l.Overdue,
		}
	}
	return res
}
