package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	queryUseCase usecase.QueryUseCase
}

func NewItemHandler(queryUseCase usecase.QueryUseCase) *ItemHandler {
	return &ItemHandler{
		queryUseCase: queryUseCase,
	}
}

// @Summary Get item
// @Description Get one catalog item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := h.itemID(c)
	if !ok {
		return
	}

	rm, err := h.queryUseCase.GetItem(c.Request.Context(), itemID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRM(rm))
}

// @Summary Blocked dates
// @Description List the taken days of one month for an item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.BlockedDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/blocked-dates [get]
func (h *ItemHandler) BlockedDates(c *gin.Context) {
	itemID, ok := h.itemID(c)
	if !ok {
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month"})
		return
	}

	blocked, err := h.queryUseCase.BlockedDates(c.Request.Context(), itemID, year, time.Month(month))
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BlockedDatesResponse{
		ItemID:  itemID,
		Year:    year,
		Month:   month,
		Blocked: blocked,
	})
}

// @Summary List item bookings
// @Description Full booking history of one item, for its owner
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/bookings [get]
func (h *ItemHandler) ListItemBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, ok := h.itemID(c)
	if !ok {
		return
	}

	rms, err := h.queryUseCase.ListByItem(c.Request.Context(), itemID, userID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rms))
}

func (h *ItemHandler) itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return 0, false
	}
	return id, true
}
