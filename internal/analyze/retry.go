package analyze

import (
	"errors"
	"math/rand/v2"
	"time"
)

const (
	// MaxRetries bounds attempts per analysis call.
	MaxRetries = 3

	backoffBase = time.Second
	backoffCap  = 30 * time.Second
)

// IsRetryable reports whether err is a transient API failure.
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns the wait before retry attempt n (0-indexed):
// exponential from backoffBase, capped, plus up to 50% jitter.
func Backoff(attempt int) time.Duration {
	d := backoffBase << uint(attempt)
	if d <= 0 || d > backoffCap {
		d = backoffCap
	}
	return d + rand.N(d/2)
}
