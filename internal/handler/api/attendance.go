package api

import (
	"net/http"

	reqdto "library-ledger/internal/handler/dto/request"
	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/internal/handler/httperr"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	cmds commands.AttendanceCommands
	q    queries.AttendanceQueries
}

func NewAttendanceHandler(cmds commands.AttendanceCommands, q queries.AttendanceQueries) *AttendanceHandler {
	return &AttendanceHandler{cmds: cmds, q: q}
}

// @Summary List visitor log
// @Tags logs
// @Produce json
// @Success 200 {array} resdto.LogResponse
// @Router /logs [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	entries, err := h.q.GetLogs(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLogEntries(entries))
}

// @Summary Record visit
// @Tags logs
// @Accept json
// @Produce json
// @Param request body reqdto.SaveLogRequest true "Log entry"
// @Success 201 {object} resdto.LogResponse
// @Failure 400 {object} httperr.Response
// @Router /logs [post]
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req reqdto.SaveLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	e, err := h.cmds.SaveLog(c.Request.Context(), req.ToFields())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLogEntry(e))
}

// @Summary Clear visitor log
// @Tags logs
// @Success 204
// @Router /logs [delete]
func (h *AttendanceHandler) Clear(c *gin.Context) {
	if err := h.cmds.ClearLogs(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
