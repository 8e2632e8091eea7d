//go:build unit || e2e

package builder

import (
	"library-ledger/internal/domain/book"
	reqdto "library-ledger/internal/handler/dto/request"
)

type BookBuilder struct {
	ID        int64
	Fields    book.Fields
	Available bool
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID: 1,
		Fields: book.Fields{
			Title:     "Venus",
			Author:    "Sample Author",
			Publisher: "Sample Publisher",
			Year:      2020,
			Category:  "Science",
			Copies:    1,
			QR:        "BOOK-VENUS",
		},
		Available: true,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.New(b.ID, b.Fields)
}

// BuildStored skips validation, like a book read back from the store.
func (b *BookBuilder) BuildStored() *book.Book {
	return book.Reconstruct(b.ID, b.Fields, b.Available)
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:       b.Fields.Title,
		Author:      b.Fields.Author,
		Publisher:   b.Fields.Publisher,
		Year:        b.Fields.Year,
		Category:    b.Fields.Category,
		Description: b.Fields.Description,
		Copies:      b.Fields.Copies,
		QR:          b.Fields.QR,
	}
}

// Fluent builder methods
func (b *BookBuilder) WithID(id int64) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Fields.Title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.Fields.Author = author
	return b
}

func (b *BookBuilder) WithCategory(category string) *BookBuilder {
	b.Fields.Category = category
	return b
}

func (b *BookBuilder) WithQR(qr string) *BookBuilder {
	b.Fields.QR = qr
	return b
}

func (b *BookBuilder) WithYear(year int) *BookBuilder {
	b.Fields.Year = year
	return b
}

func (b *BookBuilder) AsUnavailable() *BookBuilder {
	b.Available = false
	return b
}
