package repository

import (
	"context"
	"errors"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderNumberTaken is returned when an insert collides with an existing
// order number; the caller regenerates the number and retries.
var ErrOrderNumberTaken = errors.New("order number already taken")

// OrderFilter narrows admin order listings. Zero values mean "no filter".
type OrderFilter struct {
	Status        entity.OrderStatus
	PaymentStatus entity.PaymentStatus
	Limit         int
	Offset        int
}

// OrderRepository defines the operations for order persistence. Orders are
// never hard-deleted; failed payments move them to Cancelled instead.
type OrderRepository interface {
	// Create persists a new order with its embedded line-item and address
	// snapshots. A colliding order number yields ErrOrderNumberTaken.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order and takes a row lock on it. It
	// must be called inside a transaction; concurrent status transitions on
	// the same order serialize behind the lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByProviderOrderID retrieves the order correlated with a payment
	// gateway order/intent id, scoped to the given user.
	FindByProviderOrderID(ctx context.Context, userID uuid.UUID, providerOrderID string) (*entity.Order, error)

	// ListByUser retrieves the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Update writes the order's mutable fields (status, payment status,
	// provider correlation ids).
	Update(ctx context.Context, order *entity.Order) error
}
