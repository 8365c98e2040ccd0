package api

import (
	"errors"
	"net/http"

	"rentloop/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondUseCaseError maps the shared sentinel errors onto HTTP statuses.
// Anything unmapped is a 500 with no detail leaked.
func respondUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Calendar session not found or expired"})
	case errors.Is(err, errs.ErrDatesConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Dates conflict with an existing booking"})
	case errors.Is(err, errs.ErrStaleState):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not in the expected state"})
	case errors.Is(err, errs.ErrDateUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Date is not available"})
	case errors.Is(err, errs.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
	case errors.Is(err, errs.ErrOwnerNotRegistered):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Item owner has no registered account"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
