//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"rentloop/internal/domain/booking"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/tests/common/authtest"
	"rentloop/tests/common/dbtest"
	"rentloop/tests/common/httptest"
	"rentloop/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	renterID int64 = 100
	ownerID  int64 = 200
	itemID   int64 = 42
)

type BookingSuite struct {
	e2e.SharedSuite
	renterToken string
	ownerToken  string
	gatewayStub *http.Server
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
	s.renterToken = jwtHelper.GenerateToken(s.T(), renterID)
	s.ownerToken = jwtHelper.GenerateToken(s.T(), ownerID)

	s.startGatewayStub()
}

func (s *BookingSuite) TearDownSuite() {
	if s.gatewayStub != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.gatewayStub.Shutdown(ctx)
	}
}

// startGatewayStub accepts the notify webhooks the engine sends, so that
// delivery succeeds and sweeps report acted rather than failed.
func (s *BookingSuite) startGatewayStub() {
	ln, err := net.Listen("tcp", "127.0.0.1:9999")
	s.Require().NoError(err, "gateway stub port unavailable")

	mux := http.NewServeMux()
	mux.HandleFunc("/notify", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.gatewayStub = &http.Server{Handler: mux}
	go func() { _ = s.gatewayStub.Serve(ln) }()
}

func (s *BookingSuite) seedBase() {
	t := s.T()
	dbtest.CreateTestUser(t, s.DB, renterID, "maria", "")
	dbtest.CreateTestUser(t, s.DB, ownerID, "jordi", "tool_owner")
	dbtest.CreateTestItem(t, s.DB, itemID, "Cordless drill", "tool_owner", false)
}

// futureDate returns today in the booking zone shifted by n days, so the
// scenarios stay valid regardless of when the suite runs.
func (s *BookingSuite) futureDate(n int) booking.Date {
	loc, err := s.Config.Booking.Location()
	s.Require().NoError(err)
	return booking.DateOf(time.Now().In(loc)).AddDays(n)
}

func (s *BookingSuite) createBookingRequest(token string, start, end booking.Date) *resdto.BookingResponse {
	body := map[string]any{
		"item_id":    itemID,
		"start_date": start.String(),
		"end_date":   end.String(),
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, token)

	var resp resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	return &resp
}

func (s *BookingSuite) postTransition(token string, bookingID, action string, wantStatus int) *resdto.BookingResponse {
	url := fmt.Sprintf("/api/bookings/%s/%s", bookingID, action)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, token)

	if wantStatus != http.StatusOK {
		httptest.AssertErrorResponse(s.T(), rec, wantStatus, "")
		return nil
	}
	var resp resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	return &resp
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("renter books free dates and both sides can see the request", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))
		s.Equal("requested", created.State)
		s.Equal(renterID, created.RenterID)
		s.Equal(ownerID, created.OwnerID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, s.ownerToken)
		var fetched resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal(created.ID, fetched.ID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings?role=owner", nil, s.ownerToken)
		var owned []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &owned)
		s.Len(owned, 1)
	})

	s.Run("overlapping dates are rejected while touching ranges book fine", func() {
		s.seedBase()
		dbtest.CreateTestBooking(s.T(), s.DB, itemID, renterID, ownerID,
			s.futureDate(30), s.futureDate(32), booking.StatusRequested)

		body := map[string]any{
			"item_id":    itemID,
			"start_date": s.futureDate(31).String(),
			"end_date":   s.futureDate(33).String(),
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, s.renterToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflict")

		// The day after the booked range ends is free again.
		s.createBookingRequest(s.renterToken, s.futureDate(33), s.futureDate(35))
	})

	s.Run("declined bookings release their dates", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))

		declined := s.postTransition(s.ownerToken, created.ID.String(), "decline", http.StatusOK)
		s.Equal("canceled_by_owner", declined.State)

		s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))
	})
}

func (s *BookingSuite) TestConfirmationAndPayment() {
	s.Run("owner confirmation schedules all three payment reminders", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))

		confirmed := s.postTransition(s.ownerToken, created.ID.String(), "confirm", http.StatusOK)
		s.Equal("owner_confirmed_unpaid", confirmed.State)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/bookings/"+created.ID.String()+"/reminders", nil, s.renterToken)
		var tasks []*resdto.NotificationTaskResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &tasks)
		s.Len(tasks, 3)
		for _, task := range tasks {
			s.False(task.Sent)
		}
	})

	s.Run("only the owner may confirm and only from requested", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))

		s.postTransition(s.renterToken, created.ID.String(), "confirm", http.StatusForbidden)
		s.postTransition(s.ownerToken, created.ID.String(), "confirm", http.StatusOK)
		s.postTransition(s.ownerToken, created.ID.String(), "confirm", http.StatusConflict)
	})

	s.Run("mark-paid completes the happy path and retires the reminders", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))
		s.postTransition(s.ownerToken, created.ID.String(), "confirm", http.StatusOK)

		paid := s.postTransition(s.ownerToken, created.ID.String(), "mark-paid", http.StatusOK)
		s.Equal("paid_confirmed", paid.State)
		s.NotNil(paid.PaidConfirmedAt)
	})

	s.Run("paid-notice pings the owner without changing state", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))
		s.postTransition(s.ownerToken, created.ID.String(), "confirm", http.StatusOK)

		url := "/api/bookings/" + created.ID.String() + "/paid-notice"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, s.renterToken)
		s.Equal(http.StatusNoContent, rec.Code)

		fetched := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, s.renterToken)
		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), fetched, http.StatusOK, &resp)
		s.Equal("owner_confirmed_unpaid", resp.State)
	})
}

func (s *BookingSuite) TestCancellationAndRefund() {
	s.Run("renter cancel of a paid booking starts refund tracking", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))
		s.postTransition(s.ownerToken, created.ID.String(), "confirm", http.StatusOK)
		s.postTransition(s.ownerToken, created.ID.String(), "mark-paid", http.StatusOK)

		canceled := s.postTransition(s.renterToken, created.ID.String(), "cancel", http.StatusOK)
		s.Equal("canceled_by_renter", canceled.State)
		s.NotNil(canceled.PaidConfirmedAt)
		s.NotNil(canceled.LastRefundReminderAt)

		refunded := s.postTransition(s.renterToken, created.ID.String(), "confirm-refund", http.StatusOK)
		s.NotNil(refunded.RefundConfirmedAt)
	})

	s.Run("confirm-refund on an unpaid cancellation is rejected", func() {
		s.seedBase()
		created := s.createBookingRequest(s.renterToken, s.futureDate(30), s.futureDate(32))
		s.postTransition(s.renterToken, created.ID.String(), "cancel", http.StatusOK)
		s.postTransition(s.renterToken, created.ID.String(), "confirm-refund", http.StatusConflict)
	})
}

func (s *BookingSuite) TestSweeps() {
	gatewayToken := s.Config.Gateway.Token

	s.Run("auto-cancel sweep drops unpaid bookings whose start arrived", func() {
		s.seedBase()
		overdueID := dbtest.CreateTestBooking(s.T(), s.DB, itemID, renterID, ownerID,
			s.futureDate(0), s.futureDate(2), booking.StatusConfirmedUnpaid)

		rec := httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/auto-cancel", nil, gatewayToken)
		var report resdto.SweepReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal(1, report.Examined)
		s.Equal(1, report.Acted)

		fetched := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+overdueID.String(), nil, s.renterToken)
		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), fetched, http.StatusOK, &resp)
		s.Equal("canceled_unpaid_timeout", resp.State)

		// The canceled booking is out of the candidate set now.
		rec = httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/auto-cancel", nil, gatewayToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal(0, report.Examined)
		s.Equal(0, report.Acted)
	})

	s.Run("payment reminder sweep delivers due tasks exactly once", func() {
		s.seedBase()
		bookingID := dbtest.CreateTestBooking(s.T(), s.DB, itemID, renterID, ownerID,
			s.futureDate(30), s.futureDate(32), booking.StatusConfirmedUnpaid)
		dbtest.CreateTestReminderTask(s.T(), s.DB, bookingID, booking.ReminderMinus24h,
			time.Now().UTC().Add(-time.Minute))

		rec := httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/payment-reminders", nil, gatewayToken)
		var report resdto.SweepReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal(1, report.Examined)
		s.Equal(1, report.Acted)

		rec = httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/payment-reminders", nil, gatewayToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal(0, report.Examined)
	})

	s.Run("refund reminder sweep reminds the renter and throttles", func() {
		s.seedBase()
		bookingID := dbtest.CreateTestBooking(s.T(), s.DB, itemID, renterID, ownerID,
			s.futureDate(30), s.futureDate(32), booking.StatusCanceledByRenter)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE bookings SET paid_confirmed_at = now() - interval '2 days' WHERE id = $1", bookingID)
		s.Require().NoError(err)

		rec := httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/refund-reminders", nil, gatewayToken)
		var report resdto.SweepReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal(1, report.Examined)
		s.Equal(1, report.Acted)

		// Within the throttle window the booking is skipped, not re-pinged.
		rec = httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/refund-reminders", nil, gatewayToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal(1, report.Skipped)
	})

	s.Run("sweep endpoints require the gateway token", func() {
		rec := httptest.PerformGatewayRequest(s.T(), s.Router, http.MethodPost, "/api/sweeps/auto-cancel", nil, "wrong")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingSuite) TestAuth() {
	s.Run("requests without a token are rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("expired tokens are rejected", func() {
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), renterID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "expired")
	})
}
