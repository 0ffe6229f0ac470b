// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a conditional stock decrement fails
// its guard, i.e. the requested quantity exceeds the remaining stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrProductSlugTaken is returned when a create or update collides with an
// existing product slug.
var ErrProductSlugTaken = errors.New("product slug already taken")

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	Category    string
	SubCategory string
	DropCode    int
	Bestseller  *bool
	Query       string // Free-text match against name and description.
	Limit       int
	Offset      int
}

// ProductRepository defines the standard operations for product persistence.
// Stock is adjusted exclusively through the conditional AdjustStock method so
// every call site shares the same oversell guard.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByIDs retrieves the products for the given IDs, skipping unknown ones.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product. Stock is not written here.
	Update(ctx context.Context, product *entity.Product) error

	// Delete soft-deletes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock applies delta to the product's stock as a single
	// conditional update. A negative delta only succeeds while
	// stock >= -delta; otherwise ErrInsufficientStock is returned and
	// nothing is written.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
