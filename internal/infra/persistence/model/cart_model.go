package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. One cart exists per user, created
// lazily on the first mutation.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// makes the merge-on-duplicate-add behavior a database guarantee.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_variant"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_variant"`
	Size      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_cart_variant"`
	Color     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_cart_variant"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
