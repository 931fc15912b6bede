package speech

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider with a circuit breaker so a dead TTS
// collaborator fails fast instead of blocking every request on its timeout.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker wraps p with a circuit breaker.
func WithBreaker(p Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    p.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerProvider{
		inner:   p,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Synthesize forwards to the wrapped provider through the breaker.
func (b *BreakerProvider) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Synthesize(ctx, text, languageCode)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, fmt.Errorf("%w: circuit breaker open: %v", ErrUnavailable, err)
	}
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// Name returns the wrapped provider's name.
func (b *BreakerProvider) Name() string {
	return b.inner.Name()
}

// IsAvailable reports availability of the wrapped provider.
func (b *BreakerProvider) IsAvailable() error {
	return b.inner.IsAvailable()
}

var _ Provider = (*BreakerProvider)(nil)
