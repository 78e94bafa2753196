package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account and signs a token for it. Accounts may
// register as buyers or sellers; the admin role is never self-assignable.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering new account", "email", input.Email)

	role := entity.Role(input.Role)
	if input.Role == "" {
		role = entity.RoleBuyer
	}
	if role == entity.RoleAdmin || !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid role")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         role,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		// Pre-check for a friendly conflict; the unique constraint still
		// backstops concurrent registrations.
		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.IssueToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login authenticates an account by email and password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find account")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	token, err := srv.tokenService.IssueToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Info("Account logged in", "userID", user.ID)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// VerifyToken resolves a raw token to its live account.
func (srv *authService) VerifyToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.GetProfile(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	return user, nil
}

// RefreshToken issues a fresh token for an authenticated account.
func (srv *authService) RefreshToken(ctx context.Context, userID uuid.UUID) (*usecase.AuthOutput, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.IssueToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// GetProfile retrieves the authenticated account.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile updates the authenticated account's own fields.
func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
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
		if input.Avatar != nil {
			found.Avatar = *input.Avatar
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password before setting the new one.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrPasswordMismatch
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash

		return userRepo.Update(ctx, user)
	})
}
