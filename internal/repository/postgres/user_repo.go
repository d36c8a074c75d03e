package postgres

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// GetByID retrieves a user by UID
func (r *userRepo) GetByID(ctx context.Context, uid string) (*domain.User, error) {
	query := `SELECT uid, email, phone, role, created_at FROM users WHERE uid = $1`

	var user domain.User
	err := querier(ctx, r.db).QueryRow(ctx, query, uid).Scan(
		&user.UID, &user.Email, &user.Phone, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
