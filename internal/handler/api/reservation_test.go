//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/handler/api"
	reqdto "library-ledger/internal/handler/dto/request"
	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/internal/handler/middleware"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/shared"
	"library-ledger/tests/common/httptest"
	"library-ledger/tests/common/testutil"
	commandsmock "library-ledger/tests/mock/commands"
	queriesmock "library-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLedgerCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLedgerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(handlerNow))

	identity := middleware.UserIdentity()
	s.router.POST("/reservations", identity, s.handler.Create)
	s.router.GET("/reservations", identity, s.handler.ListMine)
	s.router.DELETE("/reservations/:id", identity, s.handler.Cancel)
	s.router.POST("/reservations/cleanup", s.handler.Cleanup)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func stubReservation(id int64, email string, bookID int64) *reservation.Reservation {
	return reservation.Reconstruct(id, email, bookID, handlerNow, handlerNow.Add(reservation.Window))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	reqBody := reqdto.CreateReservationRequest{BookID: 1}

	s.Run("success: returns 201 with the reservation", func() {
		s.mockCommands.EXPECT().ReserveBook(gomock.Any(), "a@x.com", int64(1)).
			Return(stubReservation(7, "a@x.com", 1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "a@x.com")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("a@x.com", body.UserEmail)
		s.Equal("active", body.Status)
		s.True(body.ExpiresAt.Equal(handlerNow.Add(24 * time.Hour)))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/7"})
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing bookId", mutate: testutil.Field("bookId", nil)},
			{name: "zero bookId", mutate: testutil.Field("bookId", 0)},
			{name: "negative bookId", mutate: testutil.Field("bookId", -3)},
			{name: "string bookId", mutate: testutil.Field("bookId", "one")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "a@x.com")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: usecase failures map to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "missing caller", err: reservation.ErrInvalidEmail, expectCode: http.StatusBadRequest, expectMsg: "Validation failed"},
			{name: "unknown book", err: errs.Wrap(shared.ErrBookNotFound, "book 1"), expectCode: http.StatusNotFound, expectMsg: "Book not found"},
			{name: "held by someone else", err: errs.Wrap(shared.ErrBookUnavailable, "book 1"), expectCode: http.StatusConflict, expectMsg: "Book is not available"},
			{name: "already held by caller", err: errs.Wrap(shared.ErrAlreadyReserved, "book 1"), expectCode: http.StatusConflict, expectMsg: "already reserved"},
			{name: "storage failure", err: errs.Mark(errs.New("disk"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ReserveBook(gomock.Any(), gomock.Any(), int64(1)).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "a@x.com")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: lists the caller's reservations", func() {
		s.mockQueries.EXPECT().GetReservationsForUser(gomock.Any(), "a@x.com").
			Return([]*reservation.Reservation{stubReservation(1, "a@x.com", 2), stubReservation(2, "a@x.com", 3)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, " a@x.com ")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(int64(3), body[1].BookID)
	})

	s.Run("success: empty list encodes as []", func() {
		s.mockQueries.EXPECT().GetReservationsForUser(gomock.Any(), "b@x.com").
			Return([]*reservation.Reservation{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "b@x.com")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), int64(7), "a@x.com").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/7", nil, "a@x.com")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for someone else's reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), int64(7), "wrong@user.com").
			Return(errs.Wrap(shared.ErrReservationNotFound, "reservation 7")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/7", nil, "wrong@user.com")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 for malformed ids", func() {
		for _, id := range []string{"abc", "0", "-1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id, nil, "a@x.com")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})
}

// ================================================================================
// TestCleanup
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCleanup() {
	s.mockCommands.EXPECT().CleanupExpiredReservations(gomock.Any()).Return(3, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/cleanup", nil, "")

	var body resdto.CleanupResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(3, body.Removed)
}
