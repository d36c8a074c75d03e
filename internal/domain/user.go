package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

// User is the identity record behind a session token. Registration and
// credential handling live with the identity provider; this backend only
// reads users to resolve roles and notification addresses.
type User struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository defines data access methods for users
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*User, error)
}

// AuthUsecase defines identity resolution for the HTTP layer
type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, uid string) (*User, error)
}
