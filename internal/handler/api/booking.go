package api

import (
	"context"
	"net/http"

	reqdto "rentloop/internal/handler/dto/request"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/usecase"
	"rentloop/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	queryUseCase   usecase.QueryUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, queryUseCase usecase.QueryUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		queryUseCase:   queryUseCase,
	}
}

// @Summary Create booking
// @Description Create a booking request, or a self-block when the caller owns the item
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	dates, err := req.ToRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	rm, err := h.bookingUseCase.CreateBooking(c.Request.Context(), userID, req.ItemID, dates)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingRM(rm))
}

// @Summary List bookings
// @Description List the caller's bookings, as renter (default) or as owner
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param role query string false "renter or owner" default(renter)
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var (
		rms []*readmodel.BookingRM
		err error
	)
	switch c.DefaultQuery("role", "renter") {
	case "owner":
		rms, err = h.queryUseCase.ListByOwner(c.Request.Context(), userID)
	case "renter":
		rms, err = h.queryUseCase.ListByRenter(c.Request.Context(), userID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rms))
}

// @Summary Get booking
// @Description Get one booking; only its renter or owner may look
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, bookingID, ok := h.actorAndBooking(c)
	if !ok {
		return
	}

	rm, err := h.queryUseCase.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary List booking reminders
// @Description List the payment reminder tasks scheduled for one booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.NotificationTaskResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/reminders [get]
func (h *BookingHandler) ListReminders(c *gin.Context) {
	userID, bookingID, ok := h.actorAndBooking(c)
	if !ok {
		return
	}

	tasks, err := h.queryUseCase.BookingTasks(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationTaskRMs(tasks))
}

// @Summary Confirm booking
// @Description Owner accepts a request; payment reminders get scheduled
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.runTransition(c, h.bookingUseCase.Confirm)
}

// @Summary Decline booking
// @Description Owner declines a pending request
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/decline [post]
func (h *BookingHandler) Decline(c *gin.Context) {
	h.runTransition(c, h.bookingUseCase.Decline)
}

// @Summary Mark booking paid
// @Description Owner confirms payment arrived
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/mark-paid [post]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	h.runTransition(c, h.bookingUseCase.MarkPaid)
}

// @Summary Cancel unpaid booking
// @Description Owner drops a confirmed booking that was never paid
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel-unpaid [post]
func (h *BookingHandler) CancelUnpaid(c *gin.Context) {
	h.runTransition(c, h.bookingUseCase.CancelUnpaid)
}

// @Summary Cancel booking
// @Description Renter cancels from any live state
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.runTransition(c, h.bookingUseCase.CancelByRenter)
}

// @Summary Confirm refund received
// @Description Renter acknowledges the refund for a paid canceled booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm-refund [post]
func (h *BookingHandler) ConfirmRefund(c *gin.Context) {
	h.runTransition(c, h.bookingUseCase.ConfirmRefund)
}

// @Summary Paid notice
// @Description Renter tells the owner the payment was sent; no state change
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 {object} nil
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/paid-notice [post]
func (h *BookingHandler) PaidNotice(c *gin.Context) {
	userID, bookingID, ok := h.actorAndBooking(c)
	if !ok {
		return
	}

	if err := h.bookingUseCase.NotifyPaid(c.Request.Context(), bookingID, userID); err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) runTransition(
	c *gin.Context,
	fn func(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error),
) {
	userID, bookingID, ok := h.actorAndBooking(c)
	if !ok {
		return
	}

	rm, err := fn(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

func (h *BookingHandler) actorAndBooking(c *gin.Context) (int64, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return 0, uuid.Nil, false
	}
	return userID, bookingID, true
}
