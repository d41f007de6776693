package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/port"
	"github.com/sony/gobreaker/v2"
)

var ErrProviderUnavailable = errors.New("payment provider unavailable")

type BreakerConfig struct {
	Name string
	// ConsecutiveFailures trips the breaker once reached.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// Breaker fails fast while the wrapped provider keeps failing. It never retries.
type Breaker struct {
	next port.PaymentProvider
	cb   *gobreaker.CircuitBreaker[domain.CheckoutSession]
}

func NewBreaker(next port.PaymentProvider, cfg BreakerConfig) (*Breaker, error) {
	if next == nil {
		return nil, fmt.Errorf("next is nil")
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[domain.CheckoutSession](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		// a caller giving up says nothing about provider health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Breaker{next: next, cb: cb}, nil
}

func (b *Breaker) CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error) {
	session, err := b.cb.Execute(func() (domain.CheckoutSession, error) {
		return b.next.CreateCheckoutSession(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.CheckoutSession{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if err != nil {
		return domain.CheckoutSession{}, err
	}

	return session, nil
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
