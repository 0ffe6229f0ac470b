package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"capsule/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func signCallback(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	gw := &razorpayGateway{keySecret: "test_secret"}

	t.Run("accepts a correctly signed callback", func(t *testing.T) {
		callback := &service.RazorpayCallback{
			ProviderOrderID: "order_ABC123",
			PaymentID:       "pay_XYZ789",
			Signature:       signCallback("test_secret", "order_ABC123", "pay_XYZ789"),
		}

		assert.NoError(t, gw.VerifySignature(callback))
	})

	t.Run("rejects a tampered payment id", func(t *testing.T) {
		callback := &service.RazorpayCallback{
			ProviderOrderID: "order_ABC123",
			PaymentID:       "pay_FORGED",
			Signature:       signCallback("test_secret", "order_ABC123", "pay_XYZ789"),
		}

		assert.Error(t, gw.VerifySignature(callback))
	})

	t.Run("rejects a signature made with the wrong secret", func(t *testing.T) {
		callback := &service.RazorpayCallback{
			ProviderOrderID: "order_ABC123",
			PaymentID:       "pay_XYZ789",
			Signature:       signCallback("other_secret", "order_ABC123", "pay_XYZ789"),
		}

		assert.Error(t, gw.VerifySignature(callback))
	})

	t.Run("rejects truncated signatures", func(t *testing.T) {
		full := signCallback("test_secret", "order_ABC123", "pay_XYZ789")
		callback := &service.RazorpayCallback{
			ProviderOrderID: "order_ABC123",
			PaymentID:       "pay_XYZ789",
			Signature:       full[:len(full)-2],
		}

		assert.Error(t, gw.VerifySignature(callback))
	})

	t.Run("rejects an incomplete callback", func(t *testing.T) {
		assert.Error(t, gw.VerifySignature(&service.RazorpayCallback{}))
	})
}
