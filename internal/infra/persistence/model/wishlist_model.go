package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemModel mirrors the 'wishlist_items' table. The composite
// unique index keeps a product on a user's wishlist at most once.
type WishlistItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
