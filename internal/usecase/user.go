package usecase

import (
	"context"

	"rentloop/internal/domain/user"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/pkg/jwt"
	"rentloop/internal/usecase/readmodel"
)

// UserUseCase registers gateway identities. The chat gateway authenticates
// end users itself; Identify trusts its profile payload, records it and
// hands back the token the user's subsequent API calls carry.
type UserUseCase interface {
	Identify(ctx context.Context, id int64, username, firstName, lastName, ownerHandle string) (string, *readmodel.UserRM, error)
	Get(ctx context.Context, id int64) (*readmodel.UserRM, error)
}

type userUseCaseImpl struct {
	userRepo UserRepository
	jwt      *jwt.Service
}

func NewUserUseCase(userRepo UserRepository, jwtService *jwt.Service) UserUseCase {
	return &userUseCaseImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

func (u *userUseCaseImpl) Identify(ctx context.Context, id int64, username, firstName, lastName, ownerHandle string) (string, *readmodel.UserRM, error) {
	entity := user.New(id, username, firstName, lastName, ownerHandle)
	if err := u.userRepo.Upsert(ctx, entity); err != nil {
		return "", nil, errs.Wrap(err, "failed to upsert user")
	}

	token, err := u.jwt.GenerateToken(id)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to reload user")
	}
	return token, rm, nil
}

func (u *userUseCaseImpl) Get(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAllowed
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return rm, nil
}
