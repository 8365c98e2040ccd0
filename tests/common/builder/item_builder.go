//go:build unit || e2e

package builder

import (
	"rentloop/internal/domain/item"
)

type ItemBuilder struct {
	ID              int64
	Name            string
	OwnerHandle     string
	PriceRaw        string
	Area            string
	DepositRequired bool
	PhotoURL        string
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          42,
		Name:        "Cordless drill",
		OwnerHandle: "tool_owner",
		PriceRaw:    "5 EUR/day",
		Area:        "Gracia",
	}
}

func (b *ItemBuilder) WithOwnerHandle(handle string) *ItemBuilder {
	b.OwnerHandle = handle
	return b
}

func (b *ItemBuilder) WithDeposit() *ItemBuilder {
	b.DepositRequired = true
	return b
}

func (b *ItemBuilder) BuildDomain() *item.Item {
	return item.Reconstruct(b.ID, b.Name, b.OwnerHandle, b.PriceRaw, b.Area, b.DepositRequired, b.PhotoURL)
}
