package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListUsers returns a page of accounts filtered by role and search term.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	page, sort, err := pageAndSort(input.ListQuery, userSortFields)
	if err != nil {
		return nil, err
	}

	filter := repository.UserFilter{
		Search:     input.Search,
		Pagination: page,
		Sort:       sort,
	}
	if input.Role != "" {
		role := entity.Role(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid role filter")
		}
		filter.Role = &role
	}

	var output *usecase.UserListOutput

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		users, total, err := factory.UserRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		output = &usecase.UserListOutput{
			Users:    users,
			PageInfo: usecase.NewPageInfo(page.Page, page.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetUser returns an account with its usage statistics. Non-admin viewers
// get public counts only: approved products and written reviews.
func (srv *userService) GetUser(ctx context.Context, viewer *entity.User, id uuid.UUID) (*usecase.UserDetailOutput, error) {
	privileged := viewer != nil && (viewer.Role == entity.RoleAdmin || viewer.ID == id)

	var output *usecase.UserDetailOutput

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		user, err := userRepo.FindByIDWithCounts(ctx, id, !privileged)
		if err != nil {
			return err
		}

		detail := &usecase.UserDetailOutput{User: user}
		if privileged {
			stats, err := userRepo.Stats(ctx, id)
			if err != nil {
				return errors.Wrap(err, "failed to load user stats")
			}
			detail.Stats = stats
		}
		output = detail

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateUser applies administrative changes to an account.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		found, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.FirstName != nil {
			found.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			found.LastName = *input.LastName
		}
		if input.Phone != nil {
			found.Phone = *input.Phone
		}
		if input.Address != nil {
			found.Address = *input.Address
		}
		if input.Role != nil {
			role := entity.Role(*input.Role)
			if !role.IsValid() {
				return errors.Wrap(domainerrors.ErrValidationFailed, "invalid role")
			}
			found.Role = role
		}
		if input.IsActive != nil {
			found.IsActive = *input.IsActive
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account. Deletion is blocked while the account has
// any dependent activity, and administrators can never delete themselves.
func (srv *userService) DeleteUser(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if actor != nil && actor.ID == id {
		return domainerrors.ErrSelfDeletion
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return err
		}

		counts, err := userRepo.CountActivity(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count user activity")
		}
		if counts.HasAny() {
			return domainerrors.ErrUserHasActivity
		}

		return userRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Account deleted", "userID", id)

	return nil
}

// ToggleUserStatus flips the active flag of an account. Administrators
// cannot disable themselves.
func (srv *userService) ToggleUserStatus(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.User, error) {
	if actor != nil && actor.ID == id {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot change own status")
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		found, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		found.IsActive = !found.IsActive
		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to toggle user status")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
