package request

import "library-ledger/internal/domain/transaction"

type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=borrow return"`
	UserName    string `json:"userName"`
	UserID      string `json:"userId,omitempty"`
	UserAddress string `json:"userAddress,omitempty"`
	BookTitle   string `json:"bookTitle"`
	BookQR      string `json:"bookQr,omitempty"`
	Author      string `json:"author,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Year        int    `json:"year,omitempty"`
}

func (r CreateTransactionRequest) ToFields() transaction.Fields {
	return transaction.Fields{
		Type:        transaction.ParseType(r.Type),
		UserName:    r.UserName,
		UserID:      r.UserID,
		UserAddress: r.UserAddress,
		BookTitle:   r.BookTitle,
		BookQR:      r.BookQR,
		Author:      r.Author,
		Publisher:   r.Publisher,
		Year:        r.Year,
	}
}
