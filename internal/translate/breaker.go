package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerTranslator wraps a Translator with a circuit breaker. Translation
// calls are paid API requests, so once the collaborator keeps failing the
// breaker opens and further calls fail fast as unavailable instead of
// spending more requests.
type BreakerTranslator struct {
	inner   Translator
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker wraps t with a circuit breaker named for error reporting.
func WithBreaker(t Translator, name string) *BreakerTranslator {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerTranslator{
		inner:   t,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped translator through the breaker.
func (b *BreakerTranslator) Translate(ctx context.Context, english string) (string, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Translate(ctx, english)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return "", fmt.Errorf("%w: circuit breaker open: %v", ErrUnavailable, err)
	}
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

var _ Translator = (*BreakerTranslator)(nil)
