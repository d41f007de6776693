package service_test

import (
	"errors"
	"testing"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/port/porttest"
	"github.com/nikolayk812/cartql/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var checkoutConfig = service.CheckoutConfig{
	Currency:   currency.EUR,
	SuccessURL: "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
	CancelURL:  "http://localhost:3000/cart?cancelled=true",
}

func TestNewCheckoutService(t *testing.T) {
	repo := porttest.NewCartRepository()
	provider := &porttest.PaymentProvider{}

	_, err := service.NewCheckoutService(nil, provider, checkoutConfig)
	require.EqualError(t, err, "repo is nil")

	_, err = service.NewCheckoutService(repo, nil, checkoutConfig)
	require.EqualError(t, err, "provider is nil")

	_, err = service.NewCheckoutService(repo, provider, service.CheckoutConfig{Currency: currency.EUR})
	require.EqualError(t, err, "success and cancel URLs are required")
}

func TestCreateCheckoutSession(t *testing.T) {
	url := "https://checkout.stripe.com/c/pay/cs_test_1"
	description := "Stoneware"
	image := "https://example.com/mug.png"

	tests := []struct {
		name      string
		setup     func(t *testing.T, carts *service.CartService)
		cartID    string
		wantErr   error
		wantError string
		wantLines []domain.LineItem
	}{
		{
			name:    "unknown cart: not found",
			cartID:  "missing",
			wantErr: domain.ErrCartNotFound,
		},
		{
			name:   "empty cart: invalid state",
			cartID: "c1",
			setup: func(t *testing.T, carts *service.CartService) {
				_, err := carts.GetOrCreateCart(t.Context(), "c1")
				require.NoError(t, err)
			},
			wantErr:   domain.ErrCartEmpty,
			wantError: "Cart is empty",
		},
		{
			name:   "cart with items: ok",
			cartID: "c1",
			setup: func(t *testing.T, carts *service.CartService) {
				_, err := carts.AddItem(t.Context(), "c1", domain.NewCartItem{
					ID: "p1", Name: "Mug", Price: 500, Quantity: quantity(2),
					Description: &description, Image: &image,
				})
				require.NoError(t, err)

				_, err = carts.AddItem(t.Context(), "c1", domain.NewCartItem{ID: "p2", Name: "Tee", Price: 1500})
				require.NoError(t, err)
			},
			wantLines: []domain.LineItem{
				{
					Quantity: 2, UnitAmount: 500, Currency: currency.EUR, ProductName: "Mug",
					ProductDescription: &description, ProductImages: []string{image},
				},
				{Quantity: 1, UnitAmount: 1500, Currency: currency.EUR, ProductName: "Tee"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := porttest.NewCartRepository()
			provider := &porttest.PaymentProvider{Session: domain.CheckoutSession{ID: "cs_test_1", URL: &url}}

			carts, err := service.NewCartService(repo)
			require.NoError(t, err)
			checkout, err := service.NewCheckoutService(repo, provider, checkoutConfig)
			require.NoError(t, err)

			if tt.setup != nil {
				tt.setup(t, carts)
			}

			session, err := checkout.CreateCheckoutSession(t.Context(), tt.cartID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantError != "" {
					assert.EqualError(t, err, tt.wantError)
				}
				assert.Empty(t, provider.Requests)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "cs_test_1", session.ID)
			assert.Equal(t, &url, session.URL)

			require.Len(t, provider.Requests, 1)
			req := provider.Requests[0]
			assert.Equal(t, tt.wantLines, req.LineItems)
			assert.Equal(t, map[string]string{"cartId": tt.cartID}, req.Metadata)
			assert.Equal(t, checkoutConfig.SuccessURL, req.SuccessURL)
			assert.Equal(t, checkoutConfig.CancelURL, req.CancelURL)
		})
	}
}

func TestCreateCheckoutSession_DoesNotCreateCart(t *testing.T) {
	repo := porttest.NewCartRepository()
	checkout, err := service.NewCheckoutService(repo, &porttest.PaymentProvider{}, checkoutConfig)
	require.NoError(t, err)

	_, err = checkout.CreateCheckoutSession(t.Context(), "missing")
	require.EqualError(t, err, "Cart not found")
	assert.Zero(t, repo.Len())
}

func TestCreateCheckoutSession_EachCallCreatesNewSession(t *testing.T) {
	repo := porttest.NewCartRepository()
	provider := &porttest.PaymentProvider{Session: domain.CheckoutSession{ID: "cs_test_1"}}

	carts, err := service.NewCartService(repo)
	require.NoError(t, err)
	checkout, err := service.NewCheckoutService(repo, provider, checkoutConfig)
	require.NoError(t, err)

	_, err = carts.AddItem(t.Context(), "c1", domain.NewCartItem{ID: "p1", Name: "Mug", Price: 500})
	require.NoError(t, err)

	for range 2 {
		_, err := checkout.CreateCheckoutSession(t.Context(), "c1")
		require.NoError(t, err)
	}
	assert.Len(t, provider.Requests, 2)
}

func TestCreateCheckoutSession_ProviderFailure(t *testing.T) {
	repo := porttest.NewCartRepository()
	providerErr := errors.New("stripe: rate limited")
	provider := &porttest.PaymentProvider{Err: providerErr}

	carts, err := service.NewCartService(repo)
	require.NoError(t, err)
	checkout, err := service.NewCheckoutService(repo, provider, checkoutConfig)
	require.NoError(t, err)

	_, err = carts.AddItem(t.Context(), "c1", domain.NewCartItem{ID: "p1", Name: "Mug", Price: 500})
	require.NoError(t, err)

	_, err = checkout.CreateCheckoutSession(t.Context(), "c1")
	require.ErrorIs(t, err, providerErr)
}
