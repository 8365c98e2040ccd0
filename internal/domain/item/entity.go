// Package item holds the read-only view of the bookable catalog. Items are
// written by an external sync job; the booking core only looks them up.
package item

import "strings"

type Item struct {
	id              int64
	name            string
	ownerHandle     string
	priceRaw        string
	area            string
	depositRequired bool
	photoURL        string
}

func Reconstruct(id int64, name, ownerHandle, priceRaw, area string, depositRequired bool, photoURL string) *Item {
	return &Item{
		id:              id,
		name:            name,
		ownerHandle:     ownerHandle,
		priceRaw:        priceRaw,
		area:            area,
		depositRequired: depositRequired,
		photoURL:        photoURL,
	}
}

func (i *Item) ID() int64             { return i.id }
func (i *Item) Name() string          { return i.name }
func (i *Item) OwnerHandle() string   { return i.ownerHandle }
func (i *Item) PriceRaw() string      { return i.priceRaw }
func (i *Item) Area() string          { return i.area }
func (i *Item) DepositRequired() bool { return i.depositRequired }
func (i *Item) PhotoURL() string      { return i.photoURL }

// OwnedBy matches the catalog's owner handle against a user's handle,
// case-insensitively, the way the catalog spreadsheet records it.
func (i *Item) OwnedBy(handle string) bool {
	return handle != "" && strings.EqualFold(i.ownerHandle, handle)
}
