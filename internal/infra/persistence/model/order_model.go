package model

import (
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Line items and the shipping
// address are immutable JSONB snapshots; there is no order_items table to
// keep in sync with the catalog. Orders are never hard-deleted.
type OrderModel struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID              `gorm:"type:uuid;not null;index"`
	OrderNumber     string                 `gorm:"type:varchar(30);unique;not null"`
	Items           []entity.OrderLineItem `gorm:"serializer:json;type:jsonb;not null"`
	Subtotal        int64                  `gorm:"not null"`
	ShippingFee     int64                  `gorm:"not null"`
	Tax             int64                  `gorm:"not null"`
	Total           int64                  `gorm:"not null"`
	Address         entity.ShippingAddress `gorm:"serializer:json;type:jsonb;not null"`
	Status          string                 `gorm:"type:varchar(30);not null;index"`
	PaymentStatus   string                 `gorm:"type:varchar(20);not null;index"`
	PaymentMethod   string                 `gorm:"type:varchar(20);not null"`
	ProviderOrderID string                 `gorm:"type:varchar(255);index"`
	ProviderPayID   string                 `gorm:"type:varchar(255)"`
	CreatedAt       time.Time              `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
