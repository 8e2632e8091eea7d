package response

import (
	"library-ledger/internal/domain/book"
	"library-ledger/internal/usecase/commands"
)

type BookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher,omitempty"`
	Year        int    `json:"year,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Copies      int    `json:"copies,omitempty"`
	QR          string `json:"qr,omitempty"`
	Available   bool   `json:"available"`
}

func FromBook(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:          b.ID(),
		Title:       b.Title(),
		Author:      b.Author(),
		Publisher:   b.Publisher(),
		Year:        b.Year(),
		Category:    b.Category(),
		Description: b.Description(),
		Copies:      b.Copies(),
		QR:          b.QR(),
		Available:   b.Available(),
	}
}

func FromBooks(books []*book.Book) []*BookResponse {
	res := make([]*BookResponse, len(books))
	for i, b := range books {
		res[i] = FromBook(b)
	}
	return res
}

type ImportBooksResponse struct {
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
	Books    []*BookResponse `json:"books"`
}

func FromImportResult(r *commands.ImportResult) *ImportBooksResponse {
	return &ImportBooksResponse{
		Imported: len(r.Imported),
		Skipped:  r.Skipped,
		Books:    FromBooks(r.Imported),
	}
}
