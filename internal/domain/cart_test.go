package domain_test

import (
	"testing"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCartTotals(t *testing.T) {
	tests := []struct {
		name           string
		items          []domain.CartItem
		wantTotalItems int64
		wantSubTotal   int64
	}{
		{
			name: "empty cart",
		},
		{
			name: "single item",
			items: []domain.CartItem{
				{ID: "p1", Price: 500, Quantity: 2},
			},
			wantTotalItems: 2,
			wantSubTotal:   1000,
		},
		{
			name: "free item contributes nothing to subtotal",
			items: []domain.CartItem{
				{ID: "p1", Price: 500, Quantity: 3},
				{ID: "p2", Price: 0, Quantity: 4},
			},
			wantTotalItems: 7,
			wantSubTotal:   1500,
		},
		{
			name: "zero quantity is summed as zero",
			items: []domain.CartItem{
				{ID: "p1", Price: 250, Quantity: 0},
				{ID: "p2", Price: 100, Quantity: 1},
			},
			wantTotalItems: 1,
			wantSubTotal:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.Cart{ID: "c1", Items: tt.items}

			assert.Equal(t, tt.wantTotalItems, cart.TotalItems())
			assert.Equal(t, tt.wantSubTotal, cart.SubTotal())
			assert.Equal(t, len(tt.items) == 0, cart.IsEmpty())
		})
	}
}

func TestQuantityOrDefault(t *testing.T) {
	q := func(v int32) *int32 { return &v }

	assert.Equal(t, int32(1), domain.QuantityOrDefault(nil))
	assert.Equal(t, int32(1), domain.QuantityOrDefault(q(0)))
	assert.Equal(t, int32(1), domain.QuantityOrDefault(q(-3)))
	assert.Equal(t, int32(1), domain.QuantityOrDefault(q(1)))
	assert.Equal(t, int32(7), domain.QuantityOrDefault(q(7)))
}

func TestCartItemTotal(t *testing.T) {
	item := domain.CartItem{Price: 1999, Quantity: 3}
	assert.Equal(t, int64(5997), item.Total())
}
