package graph

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"github.com/nikolayk812/cartql/internal/domain"
	"golang.org/x/text/currency"
)

type CartService interface {
	GetOrCreateCart(ctx context.Context, cartID string) (domain.Cart, error)
	AddItem(ctx context.Context, cartID string, input domain.NewCartItem) (domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (domain.Cart, error)
	IncreaseItem(ctx context.Context, cartID, itemID string) (domain.Cart, error)
	DecreaseItem(ctx context.Context, cartID, itemID string) (domain.Cart, error)
}

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, cartID string) (domain.CheckoutSession, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	carts    CartService
	checkout CheckoutService
	currency currency.Unit
}

func NewResolver(carts CartService, checkout CheckoutService, cur currency.Unit) (*Resolver, error) {
	if carts == nil {
		return nil, fmt.Errorf("carts is nil")
	}
	if checkout == nil {
		return nil, fmt.Errorf("checkout is nil")
	}

	return &Resolver{
		carts:    carts,
		checkout: checkout,
		currency: cur,
	}, nil
}

type AddToCartInput struct {
	CartID      graphql.ID
	ID          string
	Name        string
	Description *string
	Image       *string
	Price       int32
	Quantity    *int32
}

// ItemKeyInput backs RemoveFromCartInput, IncreaseCartItemInput and DecreaseCartItemInput.
type ItemKeyInput struct {
	CartID graphql.ID
	ID     graphql.ID
}

type CreateCheckoutSessionInput struct {
	CartID graphql.ID
}

func (r *Resolver) Cart(ctx context.Context, args struct{ ID graphql.ID }) (*cartResolver, error) {
	cart, err := r.carts.GetOrCreateCart(ctx, string(args.ID))
	return r.cartResult(ctx, cart, err)
}

func (r *Resolver) AddItem(ctx context.Context, args struct{ Input AddToCartInput }) (*cartResolver, error) {
	if err := mutationAllowed(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	cart, err := r.carts.AddItem(ctx, string(in.CartID), domain.NewCartItem{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       int64(in.Price),
		Quantity:    in.Quantity,
	})
	return r.cartResult(ctx, cart, err)
}

func (r *Resolver) RemoveItem(ctx context.Context, args struct{ Input ItemKeyInput }) (*cartResolver, error) {
	if err := mutationAllowed(ctx); err != nil {
		return nil, err
	}

	cart, err := r.carts.RemoveItem(ctx, string(args.Input.CartID), string(args.Input.ID))
	return r.cartResult(ctx, cart, err)
}

func (r *Resolver) IncreaseCartItem(ctx context.Context, args struct{ Input ItemKeyInput }) (*cartResolver, error) {
	if err := mutationAllowed(ctx); err != nil {
		return nil, err
	}

	cart, err := r.carts.IncreaseItem(ctx, string(args.Input.CartID), string(args.Input.ID))
	return r.cartResult(ctx, cart, err)
}

func (r *Resolver) DecreaseCartItem(ctx context.Context, args struct{ Input ItemKeyInput }) (*cartResolver, error) {
	if err := mutationAllowed(ctx); err != nil {
		return nil, err
	}

	cart, err := r.carts.DecreaseItem(ctx, string(args.Input.CartID), string(args.Input.ID))
	return r.cartResult(ctx, cart, err)
}

func (r *Resolver) CreateCheckoutSession(ctx context.Context, args struct{ Input CreateCheckoutSessionInput }) (*checkoutSessionResolver, error) {
	if err := mutationAllowed(ctx); err != nil {
		return nil, err
	}

	session, err := r.checkout.CreateCheckoutSession(ctx, string(args.Input.CartID))
	if err != nil {
		return nil, toQueryError(ctx, err)
	}

	return &checkoutSessionResolver{session: session}, nil
}

func (r *Resolver) cartResult(ctx context.Context, cart domain.Cart, err error) (*cartResolver, error) {
	if err != nil {
		return nil, toQueryError(ctx, err)
	}
	return &cartResolver{cart: cart, currency: r.currency}, nil
}
