package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/port"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Stripe creates hosted Checkout Sessions in payment mode.
type Stripe struct {
	sessions sessionCreator
}

func NewStripe(secretKey string) (port.PaymentProvider, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("secretKey is empty")
	}

	sc := client.New(secretKey, nil)

	return &Stripe{sessions: sc.CheckoutSessions}, nil
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error) {
	params := sessionParams(req)
	params.Context = ctx

	session, err := s.sessions.New(params)
	if err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("sessions.New: %w", err)
	}

	result := domain.CheckoutSession{ID: session.ID}
	if session.URL != "" {
		result.URL = &session.URL
	}

	return result, nil
}

func sessionParams(req domain.CheckoutRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems:  make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems)),
	}

	for _, li := range req.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(li.ProductName),
			Description: li.ProductDescription,
		}
		if len(li.ProductImages) > 0 {
			productData.Images = stripe.StringSlice(li.ProductImages)
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(li.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(strings.ToLower(li.Currency.String())),
				UnitAmount:  stripe.Int64(li.UnitAmount),
				ProductData: productData,
			},
		})
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	return params
}
