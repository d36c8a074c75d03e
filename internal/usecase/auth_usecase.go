package usecase

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

// NewAuthUsecase creates the identity resolution usecase
func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// GetCurrentUser resolves a token subject to the stored user record. The
// role always comes from the database, never from the token claims.
func (uc *authUsecase) GetCurrentUser(ctx context.Context, uid string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
