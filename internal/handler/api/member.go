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

type MemberHandler struct {
	cmds commands.MemberCommands
	q    queries.MemberQueries
}

func NewMemberHandler(cmds commands.MemberCommands, q queries.MemberQueries) *MemberHandler {
	return &MemberHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *MemberHandler) List(c *gin.Context) {
	users, err := h.q.GetUsers(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsers(users))
}

// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "User"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /users [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	u, err := h.cmds.RegisterUser(c.Request.Context(), req.ToFields())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}
