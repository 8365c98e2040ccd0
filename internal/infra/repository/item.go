package repository

import (
	"context"

	"rentloop/internal/domain/item"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, owner_handle, price_raw, COALESCE(area, ''), deposit_required, COALESCE(photo_url, '')
		FROM items WHERE id = $1`, id)

	var (
		itemID          int64
		name            string
		ownerHandle     string
		priceRaw        string
		area            string
		depositRequired bool
		photoURL        string
	)
	if err := row.Scan(&itemID, &name, &ownerHandle, &priceRaw, &area, &depositRequired, &photoURL); err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}

	return item.Reconstruct(itemID, name, ownerHandle, priceRaw, area, depositRequired, photoURL), nil
}
