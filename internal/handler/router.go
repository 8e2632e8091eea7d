package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-ledger/internal/handler/api"
	"library-ledger/internal/handler/middleware"
	"library-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Books        *api.BookHandler
	Reservations *api.ReservationHandler
	Transactions *api.TransactionHandler
	Members      *api.MemberHandler
	Attendance   *api.AttendanceHandler
	Reports      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		books := apiGroup.Group("/books")
		addRoutes(books, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Books.List},
			{Method: http.MethodPost, Path: "", Handler: h.Books.Create},
			{Method: http.MethodGet, Path: "/available", Handler: h.Books.ListAvailable},
			{Method: http.MethodPost, Path: "/import", Handler: h.Books.Import},
			{Method: http.MethodGet, Path: "/qr/:code", Handler: h.Books.FindByQR},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Books.Get},
		})

		identity := []gin.HandlerFunc{middleware.UserIdentity()}
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.ListMine, Mw: identity},
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create, Mw: identity},
			{Method: http.MethodPost, Path: "/cleanup", Handler: h.Reservations.Cleanup},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Cancel, Mw: identity},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/transactions", Handler: h.Transactions.List},
			{Method: http.MethodPost, Path: "/transactions", Handler: h.Transactions.Create},
			{Method: http.MethodDelete, Path: "/transactions", Handler: h.Transactions.Clear},
			{Method: http.MethodGet, Path: "/loans", Handler: h.Transactions.Loans},

			{Method: http.MethodGet, Path: "/users", Handler: h.Members.List},
			{Method: http.MethodPost, Path: "/users", Handler: h.Members.Register},

			{Method: http.MethodGet, Path: "/logs", Handler: h.Attendance.List},
			{Method: http.MethodPost, Path: "/logs", Handler: h.Attendance.Save},
			{Method: http.MethodDelete, Path: "/logs", Handler: h.Attendance.Clear},
		})

		reports := apiGroup.Group("/reports")
		addRoutes(reports, []route{
			{Method: http.MethodGet, Path: "/summary", Handler: h.Reports.Summary},
			{Method: http.MethodGet, Path: "/top-books", Handler: h.Reports.TopBooks},
			{Method: http.MethodGet, Path: "/top-categories", Handler: h.Reports.TopCategories},
			{Method: http.MethodGet, Path: "/monthly", Handler: h.Reports.Monthly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
