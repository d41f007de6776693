package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/port"
	"golang.org/x/text/currency"
)

type CheckoutConfig struct {
	Currency   currency.Unit
	SuccessURL string
	CancelURL  string
}

// CheckoutService mints hosted checkout sessions for existing, non-empty carts.
// Each call creates a new provider session.
type CheckoutService struct {
	repo     port.CartRepository
	provider port.PaymentProvider
	cfg      CheckoutConfig
}

func NewCheckoutService(repo port.CartRepository, provider port.PaymentProvider, cfg CheckoutConfig) (*CheckoutService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("provider is nil")
	}
	if cfg.SuccessURL == "" || cfg.CancelURL == "" {
		return nil, fmt.Errorf("success and cancel URLs are required")
	}

	return &CheckoutService{
		repo:     repo,
		provider: provider,
		cfg:      cfg,
	}, nil
}

func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, cartID string) (domain.CheckoutSession, error) {
	if cartID == "" {
		return domain.CheckoutSession{}, domain.InvalidArgument("cartId is empty")
	}

	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return domain.CheckoutSession{}, domain.ErrCartNotFound
		}
		return domain.CheckoutSession{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	if cart.IsEmpty() {
		return domain.CheckoutSession{}, domain.ErrCartEmpty
	}

	session, err := s.provider.CreateCheckoutSession(ctx, domain.CheckoutRequest{
		CartID:     cart.ID,
		LineItems:  domain.LineItems(cart, s.cfg.Currency),
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
		Metadata:   map[string]string{"cartId": cart.ID},
	})
	if err != nil {
		log.Printf("payment provider error: cart=%s: %v", cart.ID, err)
		return domain.CheckoutSession{}, fmt.Errorf("provider.CreateCheckoutSession: %w", err)
	}

	return session, nil
}
