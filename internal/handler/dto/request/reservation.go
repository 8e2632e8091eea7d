package request

type CreateReservationRequest struct {
	BookID int64 `json:"bookId" binding:"required,gt=0"`
}
