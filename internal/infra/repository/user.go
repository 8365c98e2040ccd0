package repository

import (
	"context"

	"rentloop/internal/domain/user"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"
	"rentloop/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

// Upsert records the identity as the gateway last saw it. Called on every
// profile update, so conflicts just refresh the mutable fields.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, first_name, last_name, owner_handle)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			owner_handle = EXCLUDED.owner_handle`,
		u.ID(), u.Username(), u.FirstName(), u.LastName(), u.OwnerHandle(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(owner_handle, '')
		FROM users WHERE id = $1`, id)

	var rm readmodel.UserRM
	if err := row.Scan(&rm.ID, &rm.Username, &rm.FirstName, &rm.LastName, &rm.OwnerHandle); err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &rm, nil
}

// FindByOwnerHandle resolves which registered user owns items published
// under the given handle. Nil without error when nobody matched: the
// owner may simply never have talked to the gateway yet.
func (r *UserRepository) FindByOwnerHandle(ctx context.Context, handle string) (*readmodel.UserRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(owner_handle, '')
		FROM users WHERE lower(owner_handle) = lower($1)`, handle)

	var rm readmodel.UserRM
	if err := row.Scan(&rm.ID, &rm.Username, &rm.FirstName, &rm.LastName, &rm.OwnerHandle); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find user by owner handle", err)
	}
	return &rm, nil
}
