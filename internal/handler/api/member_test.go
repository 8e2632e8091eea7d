//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/domain/user"
	"library-ledger/internal/handler/api"
	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/tests/common/builder"
	"library-ledger/tests/common/httptest"
	"library-ledger/tests/common/testutil"
	commandsmock "library-ledger/tests/mock/commands"
	queriesmock "library-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemberHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockMemberCommands(ctrl)
	h := api.NewMemberHandler(cmds, queriesmock.NewMockMemberQueries(ctrl))
	router := gin.New()
	router.POST("/users", h.Register)

	ub := builder.NewUserBuilder().WithMembership("faculty")
	registered, err := ub.BuildDomain()
	require.NoError(t, err)

	cmds.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(registered, nil).Times(1)
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/users", ub.BuildRequestDTO(), "")

	var body resdto.UserResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
	assert.Equal(t, user.MembershipFaculty.String(), body.Membership)

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/users",
		testutil.DtoMap(t, ub.BuildRequestDTO(), testutil.Field("name", nil)), "")
	httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
}

func TestAttendanceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockAttendanceCommands(ctrl)
	q := queriesmock.NewMockAttendanceQueries(ctrl)
	h := api.NewAttendanceHandler(cmds, q)
	router := gin.New()
	router.GET("/logs", h.List)
	router.POST("/logs", h.Save)
	router.DELETE("/logs", h.Clear)

	entry := attendance.Reconstruct(1, attendance.Fields{Name: "Gerald Venico", Status: "Guest", Action: "Time In"}, handlerNow)

	cmds.EXPECT().SaveLog(gomock.Any(), attendance.Fields{Name: "Gerald Venico"}).Return(entry, nil).Times(1)
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/logs", map[string]any{"name": "Gerald Venico"}, "")
	var saved resdto.LogResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &saved)
	assert.Equal(t, "Time In", saved.Action)

	q.EXPECT().GetLogs(gomock.Any()).Return([]*attendance.Entry{entry}, nil).Times(1)
	rec = httptest.PerformRequest(t, router, http.MethodGet, "/logs", nil, "")
	var listed []resdto.LogResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &listed)
	assert.Len(t, listed, 1)

	cmds.EXPECT().ClearLogs(gomock.Any()).Return(nil).Times(1)
	rec = httptest.PerformRequest(t, router, http.MethodDelete, "/logs", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
