package middleware

import (
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Every authenticated request re-fetches the account row, so disabled or
// deleted accounts are locked out the moment the flag flips, token or not.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	txManager repository.TransactionManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, txManager repository.TransactionManager) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, txManager: txManager}
}

// Authenticate validates the bearer token and loads the live account row
// into the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return err
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// OptionalAuthenticate loads the account when a valid token is presented
// and lets the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.resolveUser(c); err == nil {
			deliverycontext.SetCurrentUser(c, user)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to the given
// roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.CurrentUser(c)
			if user == nil {
				return domainerrors.ErrUnauthenticated
			}
			if !allowed.Contains(user.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolveUser(c echo.Context) (*entity.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, err := m.tokenSvc.VerifyToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	ctx := c.Request().Context()

	var user *entity.User
	err = m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	return user, nil
}
