package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Phone     string
	Address   string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the self-service profile fields. Nil pointers
// leave the corresponding field unchanged.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	Avatar    *string
}

// ChangePasswordInput defines the data required to change the password of
// the authenticated account.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the signed token along with the account it represents.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for authentication and self-service
// account operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	// VerifyToken resolves a raw token to its account, failing for expired
	// or tampered tokens and for accounts no longer active.
	VerifyToken(ctx context.Context, token string) (*entity.User, error)
	// RefreshToken issues a fresh token for an authenticated account.
	RefreshToken(ctx context.Context, userID uuid.UUID) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
}
