package converter

import (
	"time"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/domain/user"
)

// Persisted record shapes. Field names follow the layout the front end has
// always stored, so existing exports load unchanged.

type BookRecord struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher,omitempty"`
	Year        int    `json:"year,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Copies      int    `json:"copies,omitempty"`
	QR          string `json:"qr,omitempty"`
	Available   bool   `json:"available"`
}

type ReservationRecord struct {
	ID         int64     `json:"id"`
	UserEmail  string    `json:"userEmail"`
	BookID     int64     `json:"bookId"`
	ReservedAt time.Time `json:"reservedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type TransactionRecord struct {
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

type UserRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Membership string `json:"membership"`
	Address    string `json:"address,omitempty"`
	FaceID     string `json:"faceId,omitempty"`
}

type LogRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Action    string    `json:"action"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func BookToRecord(b *book.Book) BookRecord {
	f := b.Fields()
	return BookRecord{
		ID:          b.ID(),
		Title:       f.Title,
		Author:      f.Author,
		Publisher:   f.Publisher,
		Year:        f.Year,
		Category:    f.Category,
		Description: f.Description,
		Copies:      f.Copies,
		QR:          f.QR,
		Available:   b.Available(),
	}
}

func BookFromRecord(r BookRecord) *book.Book {
	return book.Reconstruct(r.ID, book.Fields{
		Title:       r.Title,
		Author:      r.Author,
		Publisher:   r.Publisher,
		Year:        r.Year,
		Category:    r.Category,
		Description: r.Description,
		Copies:      r.Copies,
		QR:          r.QR,
	}, r.Available)
}

func ReservationToRecord(r *reservation.Reservation) ReservationRecord {
	return ReservationRecord{
		ID:         r.ID(),
		UserEmail:  r.UserEmail(),
		BookID:     r.BookID(),
		ReservedAt: r.ReservedAt(),
		ExpiresAt:  r.ExpiresAt(),
	}
}

func ReservationFromRecord(r ReservationRecord) *reservation.Reservation {
	return reservation.Reconstruct(r.ID, r.UserEmail, r.BookID, r.ReservedAt, r.ExpiresAt)
}

func TransactionToRecord(t *transaction.Transaction) TransactionRecord {
	f := t.Fields()
	return TransactionRecord{
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

func TransactionFromRecord(r TransactionRecord) *transaction.Transaction {
	return transaction.Reconstruct(r.ID, transaction.Fields{
		Type:        transaction.ParseType(r.Type),
		UserName:    r.UserName,
		UserID:      r.UserID,
		UserAddress: r.UserAddress,
		BookTitle:   r.BookTitle,
		BookQR:      r.BookQR,
		Author:      r.Author,
		Publisher:   r.Publisher,
		Year:        r.Year,
	}, r.Timestamp)
}

func UserToRecord(u *user.User) UserRecord {
	return UserRecord{
		ID:         u.ID(),
		Name:       u.Name(),
		Membership: u.Membership().String(),
		Address:    u.Address(),
		FaceID:     u.FaceID(),
	}
}

func UserFromRecord(r UserRecord) *user.User {
	return user.Reconstruct(r.ID, user.Fields{
		Name:       r.Name,
		Membership: user.Membership(r.Membership),
		Address:    r.Address,
		FaceID:     r.FaceID,
	})
}

func LogToRecord(e *attendance.Entry) LogRecord {
	return LogRecord{
		ID:        e.ID(),
		Name:      e.Name(),
		Status:    e.Status(),
		Action:    e.Action(),
		Note:      e.Note(),
		Timestamp: e.Timestamp(),
	}
}

func LogFromRecord(r LogRecord) *attendance.Entry {
	return attendance.Reconstruct(r.ID, attendance.Fields{
		Name:   r.Name,
		Status: r.Status,
		Action: r.Action,
		Note:   r.Note,
	}, r.Timestamp)
}

// MapAll converts a slice element by element.
func MapAll[S, D any](src []S, fn func(S) D) []D {
	out := make([]D, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}
