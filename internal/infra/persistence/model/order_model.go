package model

import (
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Quantity   int       `gorm:"not null"`
	TotalPrice float64   `gorm:"type:numeric(12,2);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
	Buyer   *UserModel    `gorm:"foreignKey:BuyerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts the model into its domain representation.
func (m *OrderModel) ToEntity() *entity.Order {
	o := &entity.Order{
		ID:         m.ID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		Status:     entity.OrderStatus(m.Status),
		ProductID:  m.ProductID,
		BuyerID:    m.BuyerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Product != nil {
		o.Product = m.Product.ToEntity()
	}
	if m.Buyer != nil {
		o.Buyer = m.Buyer.ToEntity()
	}
	return o
}

// OrderModelFromEntity converts a domain order into its storage representation.
func OrderModelFromEntity(o *entity.Order) *OrderModel {
	return &OrderModel{
		ID:         o.ID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		ProductID:  o.ProductID,
		BuyerID:    o.BuyerID,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
