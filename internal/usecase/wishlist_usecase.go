package usecase

import (
	"context"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist operations.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID uuid.UUID, productID uuid.UUID) ([]*entity.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID uuid.UUID, productID uuid.UUID) ([]*entity.WishlistItem, error)
}
