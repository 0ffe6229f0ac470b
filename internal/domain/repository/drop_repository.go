package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDropNotFound is a domain-specific error returned when a drop is not found.
var ErrDropNotFound = errors.New("drop not found")

// ErrDropCodeTaken is returned when a create or update collides with an
// existing drop code.
var ErrDropCodeTaken = errors.New("drop code already taken")

// DropRepository defines the operations for drop/capsule persistence.
type DropRepository interface {
	// FindByID retrieves a single drop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Drop, error)

	// FindByCode retrieves a single drop by its integer code.
	FindByCode(ctx context.Context, code int) (*entity.Drop, error)

	// FindCurrent retrieves the drop currently flagged as current.
	FindCurrent(ctx context.Context) (*entity.Drop, error)

	// List retrieves all drops, newest release first.
	List(ctx context.Context) ([]*entity.Drop, error)

	// Create persists a new drop.
	Create(ctx context.Context, drop *entity.Drop) error

	// Update modifies an existing drop. The IsCurrent flag is not written
	// here; use SetCurrent.
	Update(ctx context.Context, drop *entity.Drop) error

	// SetCurrent flags the drop with the given ID as current and unsets
	// every other drop in the same atomic operation, so exactly one drop is
	// current afterwards.
	SetCurrent(ctx context.Context, id uuid.UUID) error
}
