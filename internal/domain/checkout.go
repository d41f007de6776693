package domain

import "golang.org/x/text/currency"

// LineItem is one priced entry handed to the payment provider.
type LineItem struct {
	Quantity           int64
	UnitAmount         int64
	Currency           currency.Unit
	ProductName        string
	ProductDescription *string
	ProductImages      []string
}

type CheckoutRequest struct {
	CartID     string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// CheckoutSession is the provider-issued handle for a pending payment.
type CheckoutSession struct {
	ID  string
	URL *string
}

// LineItems builds one provider line item per cart item.
func LineItems(cart Cart, cur currency.Unit) []LineItem {
	items := make([]LineItem, 0, len(cart.Items))

	for _, item := range cart.Items {
		li := LineItem{
			Quantity:    int64(item.Quantity),
			UnitAmount:  item.Price,
			Currency:    cur,
			ProductName: item.Name,
		}
		if item.Description != nil && *item.Description != "" {
			li.ProductDescription = item.Description
		}
		if item.Image != nil && *item.Image != "" {
			li.ProductImages = []string{*item.Image}
		}

		items = append(items, li)
	}

	return items
}
