package response

import (
	"time"

	"library-ledger/internal/domain/reservation"
)

type ReservationResponse struct {
	ID         int64     `json:"id"`
	UserEmail  string    `json:"userEmail"`
	BookID     int64     `json:"bookId"`
	ReservedAt time.Time `json:"reservedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Status     string    `json:"status"`
}

func FromReservation(r *reservation.Reservation, now time.Time) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		UserEmail:  r.UserEmail(),
		BookID:     r.BookID(),
		ReservedAt: r.ReservedAt(),
		ExpiresAt:  r.ExpiresAt(),
		Status:     string(r.Status(now)),
	}
}

func FromReservations(rs []*reservation.Reservation, now time.Time) []*ReservationResponse {
	res := make([]*ReservationResponse, len(rs))
	for i, r := range rs {
		res[i] = FromReservation(r, now)
	}
	return res
}

type CleanupResponse struct {
	Removed int `json:"removed"`
}
