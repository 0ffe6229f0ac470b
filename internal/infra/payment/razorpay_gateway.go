package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"capsule/config"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/service"

	"github.com/pkg/errors"
	razorpay "github.com/razorpay/razorpay-go"
)

// razorpayGateway creates Razorpay orders and authenticates the checkout
// callback. The callback signature is HMAC-SHA256 over
// "<order_id>|<payment_id>" keyed with the API secret.
type razorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	currency  string
}

// NewRazorpayGateway is the constructor for razorpayGateway.
func NewRazorpayGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Razorpay == nil || cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		return nil, errors.New("razorpay key id and secret must be provided")
	}

	currency := cfg.Razorpay.Currency
	if currency == "" {
		currency = "INR"
	}

	return &razorpayGateway{
		client:    razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
		keySecret: cfg.Razorpay.KeySecret,
		currency:  currency,
	}, nil
}

func (g *razorpayGateway) Method() entity.PaymentMethod {
	return entity.PaymentMethodRazorpay
}

// CreatePayment registers a Razorpay order for the total. The returned
// provider order id correlates the later checkout callback with our order.
func (g *razorpayGateway) CreatePayment(_ context.Context, order *entity.Order) (*service.PaymentIntent, error) {
	body, err := g.client.Order.Create(map[string]interface{}{
		"amount":   order.Total,
		"currency": g.currency,
		"receipt":  order.OrderNumber,
	}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create razorpay order")
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("razorpay order response missing id")
	}

	return &service.PaymentIntent{ProviderOrderID: id}, nil
}

// VerifySignature recomputes the callback signature and compares it in
// constant time. Any mismatch, including a truncated or padded signature,
// is rejected.
func (g *razorpayGateway) VerifySignature(callback *service.RazorpayCallback) error {
	if callback.ProviderOrderID == "" || callback.PaymentID == "" || callback.Signature == "" {
		return errors.New("incomplete razorpay callback")
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(callback.ProviderOrderID + "|" + callback.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(callback.Signature)) {
		return errors.New("razorpay signature mismatch")
	}

	return nil
}
