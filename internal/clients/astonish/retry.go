package astonish

import (
	"context"
	"errors"
	"log"

	"github.com/cenkalti/backoff/v4"
)

// maxLoginRetries bounds how often a request is replayed after logging in
// again. The forum either accepts a fresh login or something is badly wrong.
const maxLoginRetries = 1

// withRelogin runs op, and if it fails with ErrLoginFailed runs relogin and
// replays op, at most maxLoginRetries times. Any other error ends the loop
// immediately, as does a failing relogin.
func withRelogin[T any](ctx context.Context, relogin func(context.Context) error, op func(context.Context) (T, error)) (T, error) {
	attempt := 0

	operation := func() (T, error) {
		attempt++
		if attempt > 1 {
			log.Printf("Forum session lost, logging in again before retry %d/%d", attempt-1, maxLoginRetries)
			if err := relogin(ctx); err != nil {
				var zero T
				return zero, backoff.Permanent(err)
			}
		}

		result, err := op(ctx)
		if err != nil && !errors.Is(err, ErrLoginFailed) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxLoginRetries), ctx)
	return backoff.RetryWithData(operation, policy)
}
