package graph

import (
	"fmt"
	"math"

	"github.com/graph-gophers/graphql-go"
	"github.com/nikolayk812/cartql/internal/domain"
	"golang.org/x/text/currency"
)

// GraphQL Int is 32-bit; values outside that range fail the field instead of wrapping.
func toInt(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &queryError{
			message: fmt.Sprintf("Int cannot represent non 32-bit signed integer value: %d", v),
			code:    CodeInternal,
		}
	}
	return int32(v), nil
}

type cartResolver struct {
	cart     domain.Cart
	currency currency.Unit
}

func (r *cartResolver) ID() graphql.ID {
	return graphql.ID(r.cart.ID)
}

func (r *cartResolver) TotalItems() (int32, error) {
	return toInt(r.cart.TotalItems())
}

func (r *cartResolver) Items() []*cartItemResolver {
	items := make([]*cartItemResolver, 0, len(r.cart.Items))
	for _, item := range r.cart.Items {
		items = append(items, &cartItemResolver{item: item, currency: r.currency})
	}
	return items
}

func (r *cartResolver) SubTotal() *moneyResolver {
	return &moneyResolver{money: domain.NewMoney(r.cart.SubTotal(), r.currency)}
}

type cartItemResolver struct {
	item     domain.CartItem
	currency currency.Unit
}

func (r *cartItemResolver) ID() graphql.ID {
	return graphql.ID(r.item.ID)
}

func (r *cartItemResolver) Name() string {
	return r.item.Name
}

func (r *cartItemResolver) Description() *string {
	return r.item.Description
}

func (r *cartItemResolver) Quantity() int32 {
	return r.item.Quantity
}

func (r *cartItemResolver) Image() *string {
	return r.item.Image
}

func (r *cartItemResolver) UnitPrice() *moneyResolver {
	return &moneyResolver{money: domain.NewMoney(r.item.Price, r.currency)}
}

func (r *cartItemResolver) TotalPrice() *moneyResolver {
	return &moneyResolver{money: domain.NewMoney(r.item.Total(), r.currency)}
}

type moneyResolver struct {
	money domain.Money
}

func (r *moneyResolver) Amount() (int32, error) {
	return toInt(r.money.Amount)
}

func (r *moneyResolver) Formatted() string {
	return r.money.Formatted()
}

type checkoutSessionResolver struct {
	session domain.CheckoutSession
}

func (r *checkoutSessionResolver) ID() graphql.ID {
	return graphql.ID(r.session.ID)
}

func (r *checkoutSessionResolver) URL() *string {
	return r.session.URL
}
