package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistItemNotFound is returned when the addressed wishlist entry does not exist.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// ErrWishlistItemExists is returned when the (user, product) pair is already saved.
var ErrWishlistItemExists = errors.New("wishlist item already exists")

// WishlistRepository defines the operations for wishlist persistence.
type WishlistRepository interface {
	// ListByUser retrieves the user's wishlist with product data preloaded,
	// newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// Add saves a product to the user's wishlist. The (user, product)
	// uniqueness is enforced by a database constraint.
	Add(ctx context.Context, item *entity.WishlistItem) error

	// Remove deletes the entry for the given (user, product) pair.
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error
}
