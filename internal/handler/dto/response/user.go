package response

import (
	"rentloop/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	OwnerHandle string `json:"ownerHandle,omitempty"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type IdentifyResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type ItemResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	OwnerHandle     string `json:"ownerHandle"`
	PriceRaw        string `json:"priceRaw"`
	Area            string `json:"area"`
	DepositRequired bool   `json:"depositRequired"`
	PhotoURL        string `json:"photoUrl,omitempty"`
}

func FromItemRM(rm *readmodel.ItemRM) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type SweepReportResponse struct {
	Examined int `json:"examined"`
	Acted    int `json:"acted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

func FromSweepReportRM(rm *readmodel.SweepReportRM) *SweepReportResponse {
	var resp SweepReportResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
