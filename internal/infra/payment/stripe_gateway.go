// Package payment provides concrete payment gateway implementations.
package payment

import (
	"context"

	"capsule/config"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// stripeGateway creates Stripe PaymentIntents for card checkouts. The
// client secret is handed to the storefront, which drives the Stripe.js
// confirmation flow.
type stripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	currency := cfg.Stripe.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	return &stripeGateway{api: api, currency: currency}, nil
}

func (g *stripeGateway) Method() entity.PaymentMethod {
	return entity.PaymentMethodStripe
}

// CreatePayment opens a PaymentIntent for the order total. Amounts are
// already in the currency's minor unit, so no conversion happens here.
func (g *stripeGateway) CreatePayment(ctx context.Context, order *entity.Order) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
		Amount: stripe.Int64(order.Total),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_number", order.OrderNumber)
	params.AddMetadata("order_id", order.ID.String())

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stripe payment intent")
	}

	return &service.PaymentIntent{
		ProviderOrderID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

// VerifySignature is not part of the Stripe flow; the storefront reports
// the confirmation outcome directly.
func (g *stripeGateway) VerifySignature(_ *service.RazorpayCallback) error {
	return errors.New("stripe does not use callback signatures")
}
