package port

import (
	"context"

	"github.com/nikolayk812/cartql/internal/domain"
)

// CartRepository is the Cart Store. Every write is a single atomic statement
// unless stated otherwise.
type CartRepository interface {
	// GetCart returns the cart with its items or domain.ErrCartNotFound.
	GetCart(ctx context.Context, cartID string) (domain.Cart, error)
	// FindOrCreateCart never reports a missing cart; it creates it instead.
	FindOrCreateCart(ctx context.Context, cartID string) (domain.Cart, error)

	// AddItem inserts the item or, when (cartID, item.ID) exists, increments its
	// quantity by quantity leaving the other columns untouched.
	AddItem(ctx context.Context, cartID string, item domain.CartItem) error
	// IncrementItem adds delta to the item quantity and returns the new quantity.
	IncrementItem(ctx context.Context, cartID, itemID string, delta int32) (int32, error)
	// DeleteItem reports domain.ErrCartItemNotFound when nothing was deleted.
	DeleteItem(ctx context.Context, cartID, itemID string) error
	// DecrementItem lowers the quantity by one and removes the row once it is
	// no longer positive. It reports whether the row was removed.
	DecrementItem(ctx context.Context, cartID, itemID string) (bool, error)
}

type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error)
}
