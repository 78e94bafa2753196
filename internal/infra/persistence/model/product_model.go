package model

import (
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ProductModel mirrors the 'products' table. Images are stored as a JSONB
// array of URLs via GORM's json serializer.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Images      []string  `gorm:"serializer:json;type:jsonb"`
	Stock       int       `gorm:"not null;default:0"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IsApproved  bool      `gorm:"not null;default:false;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Seller   *UserModel     `gorm:"foreignKey:SellerID"`
	Reviews  []ReviewModel  `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts the model into its domain representation, including any
// preloaded associations.
func (m *ProductModel) ToEntity() *entity.Product {
	p := &entity.Product{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Images:      m.Images,
		Stock:       m.Stock,
		CategoryID:  m.CategoryID,
		SellerID:    m.SellerID,
		IsApproved:  m.IsApproved,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Category != nil {
		p.Category = m.Category.ToEntity()
	}
	if m.Seller != nil {
		p.Seller = m.Seller.ToEntity()
	}
	for i := range m.Reviews {
		p.Reviews = append(p.Reviews, m.Reviews[i].ToEntity())
	}
	return p
}

// ProductModelFromEntity converts a domain product into its storage representation.
func ProductModelFromEntity(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
		IsApproved:  p.IsApproved,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
