package api

import (
	"net/http"
	"strconv"

	reqdto "library-ledger/internal/handler/dto/request"
	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/internal/handler/httperr"
	"library-ledger/internal/handler/middleware"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds  commands.LedgerCommands
	q     queries.ReservationQueries
	clock clock.Clock
}

func NewReservationHandler(cmds commands.LedgerCommands, q queries.ReservationQueries, clock clock.Clock) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, clock: clock}
}

// @Summary Reserve book
// @Description Hold an available book for the caller for 24 hours
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-Email header string true "Caller email"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	r, err := h.cmds.ReserveBook(c.Request.Context(), email, req.BookID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+strconv.FormatInt(r.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromReservation(r, h.clock.Now()))
}

// @Summary List my reservations
// @Description Sweep expired reservations and list the caller's active ones
// @Tags reservations
// @Produce json
// @Param X-User-Email header string true "Caller email"
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	rs, err := h.q.GetReservationsForUser(c.Request.Context(), email)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(rs, h.clock.Now()))
}

// @Summary Cancel reservation
// @Description Cancel one of the caller's reservations and release the book
// @Tags reservations
// @Param X-User-Email header string true "Caller email"
// @Param id path int true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	email, _ := middleware.GetUserEmail(c)
	if err := h.cmds.CancelReservation(c.Request.Context(), id, email); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sweep expired reservations
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.CleanupResponse
// @Router /reservations/cleanup [post]
func (h *ReservationHandler) Cleanup(c *gin.Context) {
	n, err := h.cmds.CleanupExpiredReservations(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CleanupResponse{Removed: n})
}
