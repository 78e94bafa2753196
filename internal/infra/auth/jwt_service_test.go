package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	cfg := &config.Config{}
	cfg.Token.Secret = "test-secret"
	cfg.Token.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	user := &entity.User{
		ID:        uuid.New(),
		Email:     "seller@example.com",
		FirstName: "Test",
		LastName:  "Seller",
		Role:      entity.RoleSeller,
	}

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleSeller, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestJWTService_VerifyToken_Expired(t *testing.T) {
	// Built directly because the constructor replaces non-positive TTLs
	// with the default.
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.IssueToken(&entity.User{ID: uuid.New(), Role: entity.RoleBuyer})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_VerifyToken_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)

	cfg := &config.Config{}
	cfg.Token.Secret = "other-secret"
	verifier, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := issuer.IssueToken(&entity.User{ID: uuid.New(), Role: entity.RoleBuyer})
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_VerifyToken_Garbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	claims, err := svc.VerifyToken("not.a.token")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
