package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is a domain-specific error returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the operations for address-book persistence.
type AddressRepository interface {
	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// ListByUser retrieves all addresses of a user, default first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDefault flags the address as the user's default and unsets every
	// other address of the same user in the same atomic operation.
	SetDefault(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error
}
