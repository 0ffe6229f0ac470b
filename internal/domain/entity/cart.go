package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one (product, size, color) line within a user's cart. The
// persistence layer enforces at most one row per (cart, product, size,
// color); adding the same tuple again increments Quantity instead.
type CartItem struct {
	ID        uuid.UUID // The unique identifier of the cart line.
	CartID    uuid.UUID // The cart this line belongs to.
	ProductID uuid.UUID // The referenced catalog product.
	Size      string    // Chosen size.
	Color     string    // Chosen colorway name.
	Quantity  int       // Always >= 1; setting 0 removes the line.
	Product   *Product  // Live product data, loaded for display and checkout.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cart is the per-user mutable collection of cart items. One cart exists per
// user; it is created lazily on the first mutation.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal sums unit price times quantity over all lines with loaded
// product data, in minor currency units.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Product == nil {
			continue
		}
		total += item.Product.Price * int64(item.Quantity)
	}

	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
