package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token. The claim set
// mirrors the identity attached to authenticated requests.
type Claims struct {
	UserID    uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Verification is a pure cryptographic check with no I/O; callers that need
// liveness re-fetch the user row themselves.
type TokenService interface {
	// IssueToken creates a signed token for the given user.
	IssueToken(user *entity.User) (string, error)

	// VerifyToken checks the signature and expiry of a token string and
	// returns its claims.
	VerifyToken(tokenString string) (*Claims, error)
}
