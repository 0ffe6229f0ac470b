package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is one saved product on a user's wishlist, unique per
// (user, product).
type WishlistItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Product   *Product // Loaded for display.
	CreatedAt time.Time
}
