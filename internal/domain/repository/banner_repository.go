package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBannerNotFound is a domain-specific error returned when a banner is not found.
var ErrBannerNotFound = errors.New("banner not found")

// BannerRepository defines the operations for storefront banner persistence.
type BannerRepository interface {
	// ListActive retrieves active banners ordered by sort order.
	ListActive(ctx context.Context) ([]*entity.Banner, error)

	// List retrieves all banners for the admin surface.
	List(ctx context.Context) ([]*entity.Banner, error)

	// FindByID retrieves a banner by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)

	// Create persists a new banner.
	Create(ctx context.Context, banner *entity.Banner) error

	// Update modifies an existing banner.
	Update(ctx context.Context, banner *entity.Banner) error

	// Delete removes a banner by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
