package usecase

import (
	"context"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data required to put a variant in the cart.
type AddToCartInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      string    `json:"size" validate:"required"`
	Color     string    `json:"color" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CartUsecase defines the interface for cart operations. Every operation is
// scoped to the authenticated user passed in explicitly; nothing is read
// from ambient request state.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddToCart validates the variant against the live product and merges
	// duplicate (product, size, color) tuples by incrementing quantity.
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) (*entity.Cart, error)

	// SetItemQuantity updates a line's quantity; zero removes the line.
	SetItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error)

	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
