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

type TransactionHandler struct {
	cmds commands.CirculationCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.CirculationCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description Borrow and return events, most recent first
// @Tags transactions
// @Produce json
// @Success 200 {array} resdto.TransactionResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	log, err := h.q.GetTransactions(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactions(log))
}

// @Summary Record transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTransactionRequest true "Borrow or return"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req reqdto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	t, err := h.cmds.AddTransaction(c.Request.Context(), req.ToFields())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransaction(t))
}

// @Summary Clear transactions
// @Description Wipe the transaction log
// @Tags transactions
// @Success 204
// @Router /transactions [delete]
func (h *TransactionHandler) Clear(c *gin.Context) {
	if err := h.cmds.ClearTransactions(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List active loans
// @Description Outstanding borrows with due dates, earliest due first
// @Tags transactions
// @Produce json
// @Success 200 {array} resdto.LoanResponse
// @Router /loans [get]
func (h *TransactionHandler) Loans(c *gin.Context) {
	loans, err := h.q.GetActiveLoans(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoans(loans))
}
