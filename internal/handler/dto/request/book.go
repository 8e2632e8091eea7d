package request

import "library-ledger/internal/domain/book"

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Publisher   string `json:"publisher,omitempty"`
	Year        int    `json:"year,omitempty" binding:"gte=0"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Copies      int    `json:"copies,omitempty" binding:"gte=0"`
	QR          string `json:"qr,omitempty"`
}

func (r CreateBookRequest) ToFields() book.Fields {
	return book.Fields{
		Title:       r.Title,
		Author:      r.Author,
		Publisher:   r.Publisher,
		Year:        r.Year,
		Category:    r.Category,
		Description: r.Description,
		Copies:      r.Copies,
		QR:          r.QR,
	}
}
