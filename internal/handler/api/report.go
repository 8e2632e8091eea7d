package api

import (
	"net/http"

	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/internal/handler/httperr"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/pkg/config"
	"library-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxReportMonths = 120

type ReportHandler struct {
	q   queries.ReportQueries
	cfg config.LedgerConfig
}

func NewReportHandler(q queries.ReportQueries, cfg config.LedgerConfig) *ReportHandler {
	return &ReportHandler{q: q, cfg: cfg}
}

// @Summary Report summary
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.ReportSummaryResponse
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	s, err := h.q.GetReportSummary(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportSummary(s))
}

// @Summary Most borrowed books
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {array} resdto.TopBookResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/top-books [get]
func (h *ReportHandler) TopBooks(c *gin.Context) {
	limit, ok := queryInt(c, "limit", h.cfg.ReportTopLimit)
	if !ok {
		return
	}
	items, err := h.q.GetTopBooks(c.Request.Context(), limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTopBooks(items))
}

// @Summary Largest categories
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {array} resdto.CategoryCountResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/top-categories [get]
func (h *ReportHandler) TopCategories(c *gin.Context) {
	limit, ok := queryInt(c, "limit", h.cfg.ReportTopLimit)
	if !ok {
		return
	}
	items, err := h.q.GetTopCategories(c.Request.Context(), limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryCounts(items))
}

// @Summary Borrows per month
// @Tags reports
// @Produce json
// @Param months query int false "Number of months ending with the current one"
// @Success 200 {array} resdto.MonthlyStatResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	months, ok := queryInt(c, "months", h.cfg.ReportMonths)
	if !ok {
		return
	}
	if months > maxReportMonths {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("months %d exceeds %d", months, maxReportMonths), "Invalid months", nil)
		return
	}
	items, err := h.q.GetMonthlyStats(c.Request.Context(), months)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthlyStats(items))
}
