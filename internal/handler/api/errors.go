package api

import (
	"net/http"
	"strconv"

	"library-ledger/internal/handler/httperr"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var usecaseRules = []httperr.Rule{
	{Target: shared.ErrBookNotFound, Status: http.StatusNotFound, Code: "BOOK_NOT_FOUND", Message: "Book not found"},
	{Target: shared.ErrReservationNotFound, Status: http.StatusNotFound, Code: "RESERVATION_NOT_FOUND", Message: "Reservation not found"},
	{Target: shared.ErrBookUnavailable, Status: http.StatusConflict, Code: "BOOK_UNAVAILABLE", Message: "Book is not available"},
	{Target: shared.ErrAlreadyReserved, Status: http.StatusConflict, Code: "ALREADY_RESERVED", Message: "Book is already reserved by you"},
	{Target: errs.ErrNotFound, Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Not found"},
	{Target: errs.ErrUnavailable, Status: http.StatusConflict, Code: "CONFLICT", Message: "Conflict"},
	{Target: errs.ErrDuplicateActive, Status: http.StatusConflict, Code: "CONFLICT", Message: "Conflict"},
}

// abortWithUsecaseError maps a usecase failure onto an HTTP status.
// Validation failures carry their reason; unknown errors become 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrValidationFailed) {
		rule := httperr.Rule{Status: http.StatusBadRequest, Code: "VALIDATION_FAILED", Message: "Validation failed"}
		httperr.AbortWithRule(c, rule, err, gin.H{"reason": err.Error()})
		return
	}
	if rule, ok := httperr.Match(err, usecaseRules); ok {
		httperr.AbortWithRule(c, rule, err, nil)
		return
	}
	internal := httperr.Internal()
	httperr.AbortWithError(c, internal.Status, err, internal.Error.Message, nil)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("non-positive id %d", id)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional positive integer query parameter.
func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		if err == nil {
			err = errs.Newf("non-positive %s %d", key, n)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key, nil)
		return 0, false
	}
	return n, true
}
