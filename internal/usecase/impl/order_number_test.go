package impl

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^XND-\d{6}-\d{4}$`)

	for i := 0; i < 100; i++ {
		number := NewOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestNewOrderNumberAt_EncodesDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	number := newOrderNumberAt(now)

	assert.Equal(t, "XND-260901-", number[:11])
	assert.Len(t, number, 15)
}
