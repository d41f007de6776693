package domain

import (
	"time"
)

type Cart struct {
	ID    string
	Items []CartItem

	CreatedAt time.Time
}

type CartItem struct {
	ID          string
	Name        string
	Description *string
	Image       *string
	// Price is the unit price in minor currency units.
	Price    int64
	Quantity int32

	CreatedAt time.Time
}

// NewCartItem is the payload accepted when an item is added to a cart.
// Quantity is optional, see QuantityOrDefault.
type NewCartItem struct {
	ID          string
	Name        string
	Description *string
	Image       *string
	Price       int64
	Quantity    *int32
}

// TotalItems sums item quantities.
func (c Cart) TotalItems() int64 {
	var total int64
	for _, item := range c.Items {
		total += int64(item.Quantity)
	}
	return total
}

// SubTotal sums price * quantity across items, in minor units.
func (c Cart) SubTotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Total()
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the line total in minor units.
func (i CartItem) Total() int64 {
	return i.Price * int64(i.Quantity)
}

// QuantityOrDefault returns q when it is a positive integer and 1 otherwise.
// A missing or zero quantity on add is treated as a single unit.
func QuantityOrDefault(q *int32) int32 {
	if q == nil || *q <= 0 {
		return 1
	}
	return *q
}
