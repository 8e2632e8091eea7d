package transaction

import (
	"strings"
	"time"

	"library-ledger/internal/pkg/errs"
)

var ErrInvalidType = errs.Wrap(errs.ErrValidationFailed, "transaction type must be borrow or return")

// Fields describe a borrow or return event as recorded at the desk.
type Fields struct {
	Type        Type
	UserName    string
	UserID      string
	UserAddress string
	BookTitle   string
	BookQR      string
	Author      string
	Publisher   string
	Year        int
}

// Transaction is an immutable circulation event.
type Transaction struct {
	id        int64
	fields    Fields
	timestamp time.Time
}

func New(id int64, f Fields, now time.Time) (*Transaction, error) {
	if !f.Type.IsValid() {
		return nil, ErrInvalidType
	}
	return &Transaction{id: id, fields: f, timestamp: now}, nil
}

func Reconstruct(id int64, f Fields, timestamp time.Time) *Transaction {
	return &Transaction{id: id, fields: f, timestamp: timestamp}
}

func (t *Transaction) ID() int64            { return t.id }
func (t *Transaction) Fields() Fields       { return t.fields }
func (t *Transaction) Type() Type           { return t.fields.Type }
func (t *Transaction) UserName() string     { return t.fields.UserName }
func (t *Transaction) UserID() string       { return t.fields.UserID }
func (t *Transaction) BookTitle() string    { return t.fields.BookTitle }
func (t *Transaction) BookQR() string       { return t.fields.BookQR }
func (t *Transaction) Timestamp() time.Time { return t.timestamp }

// ReferencesQR compares the book code case-insensitively. A blank code matches nothing.
func (t *Transaction) ReferencesQR(code string) bool {
	code = strings.TrimSpace(code)
	own := strings.TrimSpace(t.fields.BookQR)
	if code == "" || own == "" {
		return false
	}
	return strings.EqualFold(own, code)
}

type pairKey struct {
	user string
	book string
}

// key groups events by borrower and book. The user id and book code are
// preferred; name and title stand in when they are missing.
func (t *Transaction) key() pairKey {
	user := strings.TrimSpace(t.fields.UserID)
	if user == "" {
		user = "name:" + strings.TrimSpace(t.fields.UserName)
	}
	book := strings.ToUpper(strings.TrimSpace(t.fields.BookQR))
	if book == "" {
		book = "title:" + strings.TrimSpace(t.fields.BookTitle)
	}
	return pairKey{user: user, book: book}
}
