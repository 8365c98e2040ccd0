package request

import (
	"rentloop/internal/domain/booking"
)

type CreateBookingRequest struct {
	ItemID    int64  `json:"item_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ToRange parses the ISO dates into the inclusive domain range.
func (r CreateBookingRequest) ToRange() (booking.DateRange, error) {
	start, err := booking.ParseDate(r.StartDate)
	if err != nil {
		return booking.DateRange{}, err
	}
	end, err := booking.ParseDate(r.EndDate)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(start, end)
}
