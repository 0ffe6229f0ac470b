package service

import (
	"context"

	"capsule/internal/domain/entity"
)

// PaymentIntent is the gateway-side handle created for an order. The
// ProviderOrderID correlates verification callbacks back to the order; the
// ClientSecret (where the provider issues one) is handed to the storefront
// to drive the payment widget.
type PaymentIntent struct {
	ProviderOrderID string
	ClientSecret    string
}

// RazorpayCallback carries the fields Razorpay posts back after checkout.
type RazorpayCallback struct {
	ProviderOrderID string // razorpay_order_id
	PaymentID       string // razorpay_payment_id
	Signature       string // razorpay_signature, HMAC-SHA256 over "orderID|paymentID"
}

// PaymentGateway is the thin adapter around one external payment provider.
// Implementations must not mutate any application state; the checkout use
// case owns all order and inventory writes.
type PaymentGateway interface {
	// Method identifies the payment method this gateway settles.
	Method() entity.PaymentMethod

	// CreatePayment registers the order with the provider and returns the
	// correlation handle. Adapters for methods without a provider round-trip
	// (COD) return an empty intent.
	CreatePayment(ctx context.Context, order *entity.Order) (*PaymentIntent, error)

	// VerifySignature checks a provider callback's authenticity. Gateways
	// without signed callbacks return nil for an empty callback and an error
	// otherwise.
	VerifySignature(callback *RazorpayCallback) error
}
