package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when the addressed cart line does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for cart persistence. A cart is
// created lazily on the first mutation; reads of a nonexistent cart return an
// empty cart rather than an error.
type CartRepository interface {
	// FindByUser retrieves the user's cart with its items and live product
	// data preloaded. A user without a cart gets an empty one back.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem inserts a cart line, or increments the quantity of the
	// existing line with the same (product, size, color) tuple. The
	// uniqueness of the tuple is enforced by a database constraint.
	AddItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error

	// SetItemQuantity sets the quantity of an existing line. A quantity of
	// zero removes the line.
	SetItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) error

	// RemoveItem deletes a single cart line.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error

	// ClearItems deletes every line of the user's cart.
	ClearItems(ctx context.Context, userID uuid.UUID) error
}
