package context

import (
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the key for storing the authenticated user in context.
const KeyCurrentUser ContextKey = "current_user"

// SetCurrentUser stores the authenticated user on the echo context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
// The value is always a freshly loaded row, never claims parroted back from
// the token.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyCurrentUser)).(*entity.User); ok {
		return user
	}

	return nil
}
