package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	createdAt := time.Date(2025, 11, 9, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "AGT-20251109-0007", FormatOrderNumber(7, createdAt))
	assert.Equal(t, "AGT-20251109-0042", FormatOrderNumber(42, createdAt))

	// IDs beyond four digits keep growing instead of wrapping.
	assert.Equal(t, "AGT-20251109-12345", FormatOrderNumber(12345, createdAt))
}

func TestFormatOrderNumberUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 02:00 local on Nov 10 is still Nov 9 in UTC.
	createdAt := time.Date(2025, 11, 10, 2, 0, 0, 0, loc)

	assert.Equal(t, "AGT-20251109-0001", FormatOrderNumber(1, createdAt))
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusNew, OrderStatusProcessing, true},
		{OrderStatusNew, OrderStatusCancelled, true},
		{OrderStatusNew, OrderStatusFulfilled, false},
		{OrderStatusNew, OrderStatusNew, false},
		{OrderStatusProcessing, OrderStatusFulfilled, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusNew, false},
		{OrderStatusFulfilled, OrderStatusCancelled, false},
		{OrderStatusFulfilled, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusNew, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}
