package book

import (
	"strings"

	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/pkg/validation"
)

var ErrDuplicateQR = errs.Wrap(errs.ErrValidationFailed, "qr code is already catalogued")

// DefaultCategory is reported for books catalogued without a category.
const DefaultCategory = "General"

// Fields are the caller supplied attributes of a catalog entry.
type Fields struct {
	Title       string `validate:"required,max=300"`
	Author      string `validate:"required,max=200"`
	Publisher   string `validate:"max=200"`
	Year        int    `validate:"gte=0,lte=9999"`
	Category    string `validate:"max=100"`
	Description string `validate:"max=2000"`
	Copies      int    `validate:"gte=0"`
	QR          string `validate:"max=200"`
}

func (f Fields) normalized() Fields {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	return f
}

type Book struct {
	id        int64
	fields    Fields
	available bool
}

// New creates a catalog entry. A new book is always available. Fields are
// validated after trimming but stored as given.
func New(id int64, f Fields) (*Book, error) {
	if err := validation.Struct(f.normalized()); err != nil {
		return nil, err
	}
	return &Book{id: id, fields: f, available: true}, nil
}

// Reconstruct rebuilds a stored book without validation.
func Reconstruct(id int64, f Fields, available bool) *Book {
	return &Book{id: id, fields: f, available: available}
}

func (b *Book) ID() int64           { return b.id }
func (b *Book) Fields() Fields      { return b.fields }
func (b *Book) Title() string       { return b.fields.Title }
func (b *Book) Author() string      { return b.fields.Author }
func (b *Book) Publisher() string   { return b.fields.Publisher }
func (b *Book) Year() int           { return b.fields.Year }
func (b *Book) Description() string { return b.fields.Description }
func (b *Book) Copies() int         { return b.fields.Copies }
func (b *Book) QR() string          { return b.fields.QR }
func (b *Book) Available() bool     { return b.available }

func (b *Book) Category() string {
	if strings.TrimSpace(b.fields.Category) == "" {
		return DefaultCategory
	}
	return b.fields.Category
}

// Hold marks the single copy as taken. It reports whether the flag changed.
func (b *Book) Hold() bool {
	if !b.available {
		return false
	}
	b.available = false
	return true
}

// Release marks the book available again; releasing an available book is a no-op.
func (b *Book) Release() bool {
	if b.available {
		return false
	}
	b.available = true
	return true
}

// MatchesQR compares codes case-insensitively. A blank code matches nothing.
func (b *Book) MatchesQR(code string) bool {
	code = strings.TrimSpace(code)
	own := strings.TrimSpace(b.fields.QR)
	if code == "" || own == "" {
		return false
	}
	return strings.EqualFold(own, code)
}

// NextID is one past the highest id in the catalog, or 1 for an empty catalog.
func NextID(books []*Book) int64 {
	var maxID int64
	for _, b := range books {
		if b.id > maxID {
			maxID = b.id
		}
	}
	return maxID + 1
}

func FindByID(books []*Book, id int64) (*Book, bool) {
	for _, b := range books {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

func FindByQR(books []*Book, code string) (*Book, bool) {
	for _, b := range books {
		if b.MatchesQR(code) {
			return b, true
		}
	}
	return nil, false
}

// EnsureUniqueQR rejects a code another catalog entry already carries. Loans
// are matched by code, so two books sharing one would both be held by it.
func EnsureUniqueQR(books []*Book, code string) error {
	if b, ok := FindByQR(books, code); ok {
		return errs.Wrapf(ErrDuplicateQR, "%q is used by book %d", strings.TrimSpace(code), b.id)
	}
	return nil
}
