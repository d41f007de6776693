// Package porttest provides in-memory port implementations for tests.
package porttest

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/cartql/internal/domain"
)

// CartRepository keeps carts in memory with the same semantics as the
// Postgres repository. Err, when set, is returned by every call.
type CartRepository struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart

	Err error
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepository) GetCart(_ context.Context, cartID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return domain.Cart{}, r.Err
	}

	cart, ok := r.carts[cartID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}

	return clone(cart), nil
}

func (r *CartRepository) FindOrCreateCart(_ context.Context, cartID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return domain.Cart{}, r.Err
	}
	if cartID == "" {
		return domain.Cart{}, fmt.Errorf("cartID is empty")
	}

	cart, ok := r.carts[cartID]
	if !ok {
		cart = &domain.Cart{ID: cartID, CreatedAt: time.Now()}
		r.carts[cartID] = cart
	}

	return clone(cart), nil
}

func (r *CartRepository) AddItem(_ context.Context, cartID string, item domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	cart, ok := r.carts[cartID]
	if !ok {
		return fmt.Errorf("cart %s does not exist", cartID)
	}

	if i := indexOf(cart, item.ID); i >= 0 {
		quantity, err := addQuantity(cart.Items[i].Quantity, item.Quantity)
		if err != nil {
			return err
		}
		cart.Items[i].Quantity = quantity
		return nil
	}

	item.CreatedAt = time.Now()
	cart.Items = append(cart.Items, item)

	return nil
}

func (r *CartRepository) IncrementItem(_ context.Context, cartID, itemID string, delta int32) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}

	cart, i := r.find(cartID, itemID)
	if i < 0 {
		return 0, domain.ErrCartItemNotFound
	}

	quantity, err := addQuantity(cart.Items[i].Quantity, delta)
	if err != nil {
		return 0, err
	}
	cart.Items[i].Quantity = quantity

	return quantity, nil
}

func (r *CartRepository) DeleteItem(_ context.Context, cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	cart, i := r.find(cartID, itemID)
	if i < 0 {
		return domain.ErrCartItemNotFound
	}

	cart.Items = slices.Delete(cart.Items, i, i+1)

	return nil
}

func (r *CartRepository) DecrementItem(_ context.Context, cartID, itemID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}

	cart, i := r.find(cartID, itemID)
	if i < 0 {
		return false, domain.ErrCartItemNotFound
	}

	cart.Items[i].Quantity--
	if cart.Items[i].Quantity > 0 {
		return false, nil
	}

	cart.Items = slices.Delete(cart.Items, i, i+1)

	return true, nil
}

// Len reports how many carts exist.
func (r *CartRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.carts)
}

func (r *CartRepository) find(cartID, itemID string) (*domain.Cart, int) {
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, -1
	}
	return cart, indexOf(cart, itemID)
}

func indexOf(cart *domain.Cart, itemID string) int {
	return slices.IndexFunc(cart.Items, func(item domain.CartItem) bool {
		return item.ID == itemID
	})
}

// addQuantity fails like an INTEGER column does instead of wrapping.
func addQuantity(quantity, delta int32) (int32, error) {
	sum := int64(quantity) + int64(delta)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, domain.ErrQuantityOutOfRange
	}
	return int32(sum), nil
}

func clone(cart *domain.Cart) domain.Cart {
	c := *cart
	c.Items = slices.Clone(cart.Items)
	if c.Items == nil {
		c.Items = []domain.CartItem{}
	}
	return c
}

// PaymentProvider records requests and returns Session or Err.
type PaymentProvider struct {
	mu       sync.Mutex
	Requests []domain.CheckoutRequest

	Session domain.CheckoutSession
	Err     error
}

func (p *PaymentProvider) CreateCheckoutSession(_ context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Requests = append(p.Requests, req)
	if p.Err != nil {
		return domain.CheckoutSession{}, p.Err
	}

	return p.Session, nil
}
