package api

import (
	"net/http"

	"rentloop/internal/domain/booking"
	reqdto "rentloop/internal/handler/dto/request"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
}

func NewCalendarHandler(calendarUseCase usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
	}
}

// @Summary Open calendar session
// @Description Start a two-step date selection for an item, viewing the current month
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenSessionRequest true "Session request"
// @Success 201 {object} resdto.CalendarSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendar/sessions [post]
func (h *CalendarHandler) OpenSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.OpenSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.calendarUseCase.OpenSession(c.Request.Context(), userID, req.ItemID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCalendarSessionRM(rm))
}

// @Summary Navigate calendar
// @Description Shift the viewed month by a delta, keeping any chosen start date
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.NavigateRequest true "Navigation delta"
// @Success 200 {object} resdto.CalendarSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendar/sessions/{id}/navigate [post]
func (h *CalendarHandler) Navigate(c *gin.Context) {
	userID, sessionID, ok := h.actorAndSession(c)
	if !ok {
		return
	}

	var req reqdto.NavigateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.calendarUseCase.Navigate(c.Request.Context(), sessionID, userID, req.DeltaMonths)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarSessionRM(rm))
}

// @Summary Select date
// @Description Apply one tapped day; a completed range creates the booking
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Selected date"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /calendar/sessions/{id}/select [post]
func (h *CalendarHandler) SelectDate(c *gin.Context) {
	userID, sessionID, ok := h.actorAndSession(c)
	if !ok {
		return
	}

	var req reqdto.SelectDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	date, err := booking.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	rm, err := h.calendarUseCase.SelectDate(c.Request.Context(), sessionID, userID, date)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelectionRM(rm))
}

// @Summary Parse date range
// @Description Book from free text like "12.06-14.06", bypassing the interactive picker
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ParseRangeRequest true "Item and raw text"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /calendar/parse-range [post]
func (h *CalendarHandler) ParseRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ParseRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.calendarUseCase.ParseAndBook(c.Request.Context(), userID, req.ItemID, req.Text)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingRM(rm))
}

func (h *CalendarHandler) actorAndSession(c *gin.Context) (int64, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return 0, uuid.Nil, false
	}
	return userID, sessionID, true
}
