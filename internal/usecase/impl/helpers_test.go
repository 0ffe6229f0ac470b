package impl

import (
	"io"
	"log/slog"

	"capsule/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Pricing: &config.PricingConfig{
			ShippingFee:           500,
			FreeShippingThreshold: 20000,
			TaxRateBps:            0,
		},
	}
}
