package service

import (
	"context"
	"fmt"
	"log"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/port"
)

// CartService resolves cart reads and item mutations against the Cart Store.
// Every mutation returns the cart as re-read after the write.
type CartService struct {
	repo port.CartRepository
}

func NewCartService(repo port.CartRepository) (*CartService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	return &CartService{repo: repo}, nil
}

// GetOrCreateCart never reports a missing cart; an unknown id creates an empty one.
func (s *CartService) GetOrCreateCart(ctx context.Context, cartID string) (domain.Cart, error) {
	if cartID == "" {
		return domain.Cart{}, domain.InvalidArgument("cartId is empty")
	}

	cart, err := s.repo.FindOrCreateCart(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.FindOrCreateCart: %w", err)
	}

	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, cartID string, input domain.NewCartItem) (domain.Cart, error) {
	if err := validateNewItem(input); err != nil {
		return domain.Cart{}, err
	}

	if _, err := s.GetOrCreateCart(ctx, cartID); err != nil {
		return domain.Cart{}, err
	}

	err := s.repo.AddItem(ctx, cartID, domain.CartItem{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
		Quantity:    domain.QuantityOrDefault(input.Quantity),
	})
	if err != nil {
		log.Printf("repo add item error: cart=%s item=%s: %v", cartID, input.ID, err)
		return domain.Cart{}, fmt.Errorf("repo.AddItem: %w", err)
	}

	return s.GetOrCreateCart(ctx, cartID)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) (domain.Cart, error) {
	if err := validateItemKey(cartID, itemID); err != nil {
		return domain.Cart{}, err
	}

	if err := s.repo.DeleteItem(ctx, cartID, itemID); err != nil {
		return domain.Cart{}, fmt.Errorf("repo.DeleteItem: %w", err)
	}

	return s.GetOrCreateCart(ctx, cartID)
}

func (s *CartService) IncreaseItem(ctx context.Context, cartID, itemID string) (domain.Cart, error) {
	if err := validateItemKey(cartID, itemID); err != nil {
		return domain.Cart{}, err
	}

	if _, err := s.repo.IncrementItem(ctx, cartID, itemID, 1); err != nil {
		return domain.Cart{}, fmt.Errorf("repo.IncrementItem: %w", err)
	}

	return s.GetOrCreateCart(ctx, cartID)
}

// DecreaseItem removes the item once its quantity drops to zero.
func (s *CartService) DecreaseItem(ctx context.Context, cartID, itemID string) (domain.Cart, error) {
	if err := validateItemKey(cartID, itemID); err != nil {
		return domain.Cart{}, err
	}

	if _, err := s.repo.DecrementItem(ctx, cartID, itemID); err != nil {
		return domain.Cart{}, fmt.Errorf("repo.DecrementItem: %w", err)
	}

	return s.GetOrCreateCart(ctx, cartID)
}

func validateItemKey(cartID, itemID string) error {
	if cartID == "" {
		return domain.InvalidArgument("cartId is empty")
	}
	if itemID == "" {
		return domain.InvalidArgument("id is empty")
	}
	return nil
}

func validateNewItem(input domain.NewCartItem) error {
	if input.ID == "" {
		return domain.InvalidArgument("id is empty")
	}
	if input.Name == "" {
		return domain.InvalidArgument("name is empty")
	}
	if input.Price < 0 {
		return domain.InvalidArgument("price is negative")
	}
	return nil
}
