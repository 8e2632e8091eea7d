package middleware

import (
	"log/slog"
	"slices"

	"library-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ledgerHeaders must reach the API from any browser client: callers identify
// themselves with X-User-Email and correlate logs with X-Request-ID.
var ledgerHeaders = []string{UserEmailHeader, RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allow := slices.Clone(cfg.AllowHeaders)
	for _, h := range ledgerHeaders {
		if !slices.Contains(allow, h) {
			allow = append(allow, h)
		}
	}
	expose := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(expose, RequestIDHeader) {
		expose = append(expose, RequestIDHeader)
	}

	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Any("allow_headers", allow),
	)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
