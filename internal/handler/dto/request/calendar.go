package request

type OpenSessionRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

type NavigateRequest struct {
	DeltaMonths int `json:"delta_months" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ParseRangeRequest is the free-text fallback, e.g. "12.06-14.06".
type ParseRangeRequest struct {
	ItemID int64  `json:"item_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}
