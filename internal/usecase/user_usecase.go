package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListUsersInput defines the filters accepted when listing accounts.
type ListUsersInput struct {
	Role   string
	Search string
	ListQuery
}

// UpdateUserInput defines the account fields an administrator may change.
// Nil pointers leave the corresponding field unchanged.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	Role      *string
	IsActive  *bool
}

// --- Output DTOs ---

// UserListOutput returns one page of accounts.
type UserListOutput struct {
	Users []*entity.User
	PageInfo
}

// UserDetailOutput returns an account together with its usage statistics.
type UserDetailOutput struct {
	User  *entity.User
	Stats *entity.UserStats
}

// UserUsecase defines the interface for account administration operations.
type UserUsecase interface {
	ListUsers(ctx context.Context, input ListUsersInput) (*UserListOutput, error)
	GetUser(ctx context.Context, viewer *entity.User, id uuid.UUID) (*UserDetailOutput, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actor *entity.User, id uuid.UUID) error
	ToggleUserStatus(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.User, error)
}
