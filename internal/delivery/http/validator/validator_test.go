package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=BUYER SELLER"`
	Rating   int    `validate:"omitempty,min=1,max=5"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "buyer@example.com",
		Password: "Password123",
		Role:     "BUYER",
		Rating:   5,
	})

	assert.NoError(t, err)
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "SUPERUSER",
	})

	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 3)

	byField := map[string]string{}
	for _, f := range validationErr.Fields {
		byField[f.Field] = f.Message
	}

	// Field names are lowered to match the JSON casing clients send.
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be at least 8", byField["password"])
	assert.Equal(t, "must be one of: BUYER SELLER", byField["role"])
}

func TestValidate_RequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 2)
	assert.Equal(t, "is required", validationErr.Fields[0].Message)
}
