package model

import (
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// CategoryModel mirrors the 'categories' table. Name uniqueness is enforced
// case-insensitively by a functional index on lower(name), created in the
// migration step alongside AutoMigrate.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(512)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`

	// ProductCount is populated by list queries via a correlated subquery.
	ProductCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts the model into its domain representation.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Image:        m.Image,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		ProductCount: m.ProductCount,
	}
}

// CategoryModelFromEntity converts a domain category into its storage representation.
func CategoryModelFromEntity(c *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
