package usecase

import (
	"context"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to convert the live cart into an
// order. Line items are always re-derived from the stored cart, never taken
// from the request body.
type PlaceOrderInput struct {
	AddressID uuid.UUID            `json:"addressId" validate:"required"`
	Method    entity.PaymentMethod `json:"method" validate:"required,oneof=cod stripe razorpay"`
}

// VerifyStripeInput defines the data the storefront posts after a Stripe
// payment attempt resolves.
type VerifyStripeInput struct {
	OrderID uuid.UUID `json:"orderId" validate:"required"`
	Success bool      `json:"success"`
}

// VerifyRazorpayInput defines the callback fields Razorpay posts after
// checkout completes.
type VerifyRazorpayInput struct {
	ProviderOrderID string `json:"razorpayOrderId" validate:"required"`
	PaymentID       string `json:"razorpayPaymentId" validate:"required"`
	Signature       string `json:"razorpaySignature" validate:"required"`
}

// UpdateOrderStatusInput defines the admin fulfillment transition request.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// --- Output DTOs ---

// PlaceOrderOutput returns the persisted order and, for gateway methods, the
// provider handle the storefront needs to collect the payment.
type PlaceOrderOutput struct {
	Order   *entity.Order
	Payment *service.PaymentIntent
}

// CheckoutUsecase defines the interface for the order/inventory reconciler:
// order placement, payment verification and fulfillment transitions. One
// invariant holds across all payment methods: stock decrement, order insert
// and cart clearing happen atomically at placement, and payment failures
// compensate in a single transaction.
type CheckoutUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*PlaceOrderOutput, error)
	VerifyStripe(ctx context.Context, userID uuid.UUID, input *VerifyStripeInput) (*entity.Order, error)
	VerifyRazorpay(ctx context.Context, userID uuid.UUID, input *VerifyRazorpayInput) (*entity.Order, error)

	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error)

	// Admin surface.
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
}
