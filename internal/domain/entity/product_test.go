package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_AverageRating(t *testing.T) {
	product := &Product{}
	assert.Equal(t, float64(0), product.AverageRating())

	product.Reviews = []*Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 2},
	}
	assert.InDelta(t, 11.0/3.0, product.AverageRating(), 0.0001)
	assert.Equal(t, 3, product.ReviewCount())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleSeller.IsValid())
	assert.True(t, RoleBuyer.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
}
