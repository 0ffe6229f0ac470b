package payment

import (
	"context"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/service"

	"github.com/pkg/errors"
)

// codGateway handles cash-on-delivery orders. No external provider is
// involved; payment stays pending until the courier settles it.
type codGateway struct{}

// NewCODGateway is the constructor for codGateway.
func NewCODGateway() service.PaymentGateway {
	return &codGateway{}
}

func (g *codGateway) Method() entity.PaymentMethod {
	return entity.PaymentMethodCOD
}

// CreatePayment succeeds without contacting any provider.
func (g *codGateway) CreatePayment(_ context.Context, _ *entity.Order) (*service.PaymentIntent, error) {
	return nil, nil
}

// VerifySignature is meaningless for cash on delivery.
func (g *codGateway) VerifySignature(_ *service.RazorpayCallback) error {
	return errors.New("cash on delivery has no callback signatures")
}
