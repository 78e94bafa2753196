package model

import (
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index keeps
// each account to a single review per product.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
	User    *UserModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToEntity converts the model into its domain representation.
func (m *ReviewModel) ToEntity() *entity.Review {
	r := &entity.Review{
		ID:        m.ID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Product != nil {
		r.Product = m.Product.ToEntity()
	}
	if m.User != nil {
		r.User = m.User.ToEntity()
	}
	return r
}

// ReviewModelFromEntity converts a domain review into its storage representation.
func ReviewModelFromEntity(r *entity.Review) *ReviewModel {
	return &ReviewModel{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
