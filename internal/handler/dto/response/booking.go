package response

import (
	"time"

	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                   uuid.UUID  `json:"id"`
	ItemID               int64      `json:"itemId"`
	ItemName             string     `json:"itemName"`
	DepositRequired      bool       `json:"depositRequired"`
	RenterID             int64      `json:"renterId"`
	OwnerID              int64      `json:"ownerId"`
	StartDate            string     `json:"startDate"`
	EndDate              string     `json:"endDate"`
	State                string     `json:"state"`
	PaidConfirmedAt      *time.Time `json:"paidConfirmedAt,omitempty"`
	RefundConfirmedAt    *time.Time `json:"refundConfirmedAt,omitempty"`
	LastRefundReminderAt *time.Time `json:"lastRefundReminderAt,omitempty"`
	CanceledReason       *string    `json:"canceledReason,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.StartDate = rm.StartDate.Format("2006-01-02")
	resp.EndDate = rm.EndDate.Format("2006-01-02")
	return &resp
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingRM(rm)
	}
	return out
}

type NotificationTaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"bookingId"`
	Kind         string     `json:"kind"`
	ScheduledFor time.Time  `json:"scheduledFor"`
	Sent         bool       `json:"sent"`
	SentAt       *time.Time `json:"sentAt,omitempty"`
}

func FromNotificationTaskRMs(rms []*readmodel.NotificationTaskRM) []*NotificationTaskResponse {
	out := make([]*NotificationTaskResponse, len(rms))
	for i, rm := range rms {
		var resp NotificationTaskResponse
		_ = copier.Copy(&resp, rm)
		out[i] = &resp
	}
	return out
}
