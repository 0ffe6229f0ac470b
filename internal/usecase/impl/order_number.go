package impl

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberPrefix = "XND"

// NewOrderNumber builds a human-readable order number of the form
// XND-YYMMDD-NNNN with a random 4-digit suffix. Uniqueness is enforced by
// the database; callers retry with a fresh number on collision.
func NewOrderNumber() string {
	return newOrderNumberAt(time.Now())
}

func newOrderNumberAt(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// degrade to a time-derived suffix rather than failing checkout.
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("%s-%s-%04d", orderNumberPrefix, now.Format("060102"), n.Int64())
}
