package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"library-ledger/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the public response of the newest error recorded by a
// handler that did not write a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for _, e := range slices.Backward(c.Errors.ByType(gin.ErrorTypePublic)) {
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		resp := httperr.Internal()
		c.JSON(resp.Status, resp)
	}
}

// CustomRecovery turns a handler panic into a 500 with the standard body.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				slog.Any("panic", rec),
				slog.String("path", c.Request.URL.Path),
				slog.String("request_id", GetRequestID(c)),
			)
			resp := httperr.Internal()
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
