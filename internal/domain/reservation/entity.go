package reservation

import (
	"strings"
	"time"

	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/pkg/validation"
)

// Window is how long a reservation holds a book.
const Window = 24 * time.Hour

// Status is derived from the clock and never stored.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

var (
	ErrInvalidEmail  = errs.Wrap(errs.ErrValidationFailed, "user email is invalid")
	ErrInvalidBookID = errs.Wrap(errs.ErrValidationFailed, "book id must be positive")
)

type Reservation struct {
	id         int64
	userEmail  string
	bookID     int64
	reservedAt time.Time
	expiresAt  time.Time
}

func New(id int64, userEmail string, bookID int64, now time.Time) (*Reservation, error) {
	email, err := NormalizeEmail(userEmail)
	if err != nil {
		return nil, err
	}
	if bookID <= 0 {
		return nil, ErrInvalidBookID
	}

	return &Reservation{
		id:         id,
		userEmail:  email,
		bookID:     bookID,
		reservedAt: now,
		expiresAt:  now.Add(Window),
	}, nil
}

func Reconstruct(id int64, userEmail string, bookID int64, reservedAt, expiresAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		userEmail:  userEmail,
		bookID:     bookID,
		reservedAt: reservedAt,
		expiresAt:  expiresAt,
	}
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) UserEmail() string     { return r.userEmail }
func (r *Reservation) BookID() int64         { return r.bookID }
func (r *Reservation) ReservedAt() time.Time { return r.reservedAt }
func (r *Reservation) ExpiresAt() time.Time  { return r.expiresAt }

// IsActive reports whether the hold still stands at now. A reservation whose
// expiresAt equals now is already expired.
func (r *Reservation) IsActive(now time.Time) bool {
	return now.Before(r.expiresAt)
}

func (r *Reservation) Status(now time.Time) Status {
	if r.IsActive(now) {
		return StatusActive
	}
	return StatusExpired
}

func (r *Reservation) OwnedBy(userEmail string) bool {
	return r.userEmail == strings.TrimSpace(userEmail)
}

// HeldBy reports whether userEmail holds an active reservation on bookID at now.
func HeldBy(all []*Reservation, userEmail string, bookID int64, now time.Time) bool {
	for _, r := range all {
		if r.bookID == bookID && r.OwnedBy(userEmail) && r.IsActive(now) {
			return true
		}
	}
	return false
}

// HoldsBook reports whether any active reservation other than except references bookID.
func HoldsBook(all []*Reservation, bookID, except int64, now time.Time) bool {
	for _, r := range all {
		if r.id != except && r.bookID == bookID && r.IsActive(now) {
			return true
		}
	}
	return false
}

// Partition splits reservations into those still active at now and those that have expired.
func Partition(all []*Reservation, now time.Time) (active, expired []*Reservation) {
	for _, r := range all {
		if r.IsActive(now) {
			active = append(active, r)
		} else {
			expired = append(expired, r)
		}
	}
	return active, expired
}

// NormalizeEmail trims the address and checks it parses as a bare mailbox.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := validation.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}
