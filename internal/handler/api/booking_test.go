//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rentloop/internal/handler/api"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/readmodel"
	"rentloop/tests/common/builder"
	"rentloop/tests/common/httptest"
	"rentloop/tests/common/testutil"
	usecasemock "rentloop/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 100

// fakeAuth mimics the JWT middleware: any bearer token authenticates as
// testUserID, no token is a 401.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}
	c.Set("user_id", testUserID)
	c.Next()
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
	mockQuery   *usecasemock.MockQueryUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.mockQuery = usecasemock.NewMockQueryUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBooking, s.mockQuery)

	s.router.POST("/bookings", fakeAuth, s.handler.CreateBooking)
	s.router.GET("/bookings", fakeAuth, s.handler.ListBookings)
	s.router.GET("/bookings/:id", fakeAuth, s.handler.GetBooking)
	s.router.GET("/bookings/:id/reminders", fakeAuth, s.handler.ListReminders)
	s.router.POST("/bookings/:id/confirm", fakeAuth, s.handler.Confirm)
	s.router.POST("/bookings/:id/decline", fakeAuth, s.handler.Decline)
	s.router.POST("/bookings/:id/mark-paid", fakeAuth, s.handler.MarkPaid)
	s.router.POST("/bookings/:id/cancel-unpaid", fakeAuth, s.handler.CancelUnpaid)
	s.router.POST("/bookings/:id/cancel", fakeAuth, s.handler.Cancel)
	s.router.POST("/bookings/:id/confirm-refund", fakeAuth, s.handler.ConfirmRefund)
	s.router.POST("/bookings/:id/paid-notice", fakeAuth, s.handler.PaidNotice)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the created booking", func() {
		s.mockBooking.EXPECT().
			CreateBooking(gomock.Any(), testUserID, b.ItemID, gomock.Any()).
			Return(b.BuildRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("2026-06-10", body.StartDate)
		s.Equal("2026-06-12", body.EndDate)
	})

	s.Run("error: 400 on validation failures", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing item_id", mutate: testutil.Field("item_id", nil)},
			{name: "missing start_date", mutate: testutil.Field("start_date", nil)},
			{name: "missing end_date", mutate: testutil.Field("end_date", nil)},
			{name: "malformed date", mutate: testutil.Field("start_date", "12.06.2026")},
			{name: "end before start", mutate: testutil.Field("end_date", "2026-06-01")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when the dates conflict", func() {
		s.mockBooking.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatesConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("error: 404 for an unknown item", func() {
		s.mockBooking.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 422 when the owner never registered", func() {
		s.mockBooking.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrOwnerNotRegistered).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"
	rms := []*readmodel.BookingRM{builder.NewBookingBuilder().BuildRM()}

	s.Run("success: defaults to the renter view", func() {
		s.mockQuery.EXPECT().
			ListByRenter(gomock.Any(), testUserID).
			Return(rms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: role=owner lists owned bookings", func() {
		s.mockQuery.EXPECT().
			ListByOwner(gomock.Any(), testUserID).
			Return(rms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?role=owner", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?role=admin", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "role")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQuery.EXPECT().
			GetBooking(gomock.Any(), b.ID, testUserID).
			Return(b.BuildRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.ID)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 for a third party", func() {
		s.mockQuery.EXPECT().
			GetBooking(gomock.Any(), b.ID, testUserID).
			Return(nil, errs.ErrNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockQuery.EXPECT().
			GetBooking(gomock.Any(), b.ID, testUserID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	b := builder.NewBookingBuilder()

	type expecter func() *gomock.Call

	testCases := []struct {
		name   string
		path   string
		expect expecter
	}{
		{
			name: "confirm",
			path: "confirm",
			expect: func() *gomock.Call {
				return s.mockBooking.EXPECT().Confirm(gomock.Any(), b.ID, testUserID)
			},
		},
		{
			name: "decline",
			path: "decline",
			expect: func() *gomock.Call {
				return s.mockBooking.EXPECT().Decline(gomock.Any(), b.ID, testUserID)
			},
		},
		{
			name: "mark paid",
			path: "mark-paid",
			expect: func() *gomock.Call {
				return s.mockBooking.EXPECT().MarkPaid(gomock.Any(), b.ID, testUserID)
			},
		},
		{
			name: "cancel unpaid",
			path: "cancel-unpaid",
			expect: func() *gomock.Call {
				return s.mockBooking.EXPECT().CancelUnpaid(gomock.Any(), b.ID, testUserID)
			},
		},
		{
			name: "cancel",
			path: "cancel",
			expect: func() *gomock.Call {
				return s.mockBooking.EXPECT().CancelByRenter(gomock.Any(), b.ID, testUserID)
			},
		},
		{
			name: "confirm refund",
			path: "confirm-refund",
			expect: func() *gomock.Call {
				return s.mockBooking.EXPECT().ConfirmRefund(gomock.Any(), b.ID, testUserID)
			},
		},
	}

	for _, tc := range testCases {
		url := "/bookings/" + b.ID.String() + "/" + tc.path

		s.Run(tc.name+" succeeds", func() {
			tc.expect().Return(b.BuildRM(), nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		})

		s.Run(tc.name+" hits a stale state", func() {
			tc.expect().Return(nil, errs.ErrStaleState).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		})

		s.Run(tc.name+" rejects the wrong actor", func() {
			tc.expect().Return(nil, errs.ErrNotAllowed).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
		})
	}
}

// ================================================================================
// TestPaidNotice
// ================================================================================

func (s *BookingHandlerTestSuite) TestPaidNotice() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/paid-notice"

	s.Run("success: returns 204 with no body", func() {
		s.mockBooking.EXPECT().
			NotifyPaid(gomock.Any(), bookingID, testUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 409 when the booking is not awaiting payment", func() {
		s.mockBooking.EXPECT().
			NotifyPaid(gomock.Any(), bookingID, testUserID).
			Return(errs.ErrStaleState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestListReminders
// ================================================================================

func (s *BookingHandlerTestSuite) TestListReminders() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reminders"

	s.Run("success: returns the scheduled tasks", func() {
		tasks := []*readmodel.NotificationTaskRM{
			{ID: uuid.New(), BookingID: bookingID, Kind: "minus_24h"},
			{ID: uuid.New(), BookingID: bookingID, Kind: "minus_12h"},
		}
		s.mockQuery.EXPECT().
			BookingTasks(gomock.Any(), bookingID, testUserID).
			Return(tasks, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body []*resdto.NotificationTaskResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("minus_24h", body[0].Kind)
	})
}
