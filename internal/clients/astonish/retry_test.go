package astonish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reloginRecorder struct {
	calls int
	err   error
}

func (r *reloginRecorder) relogin(context.Context) error {
	r.calls++
	return r.err
}

func TestWithRelogin(t *testing.T) {
	ctx := context.Background()
	errOther := errors.New("boom")

	t.Run("success needs no relogin", func(t *testing.T) {
		r := &reloginRecorder{}
		attempts := 0
		got, err := withRelogin(ctx, r.relogin, func(context.Context) (string, error) {
			attempts++
			return "page", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "page", got)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 0, r.calls)
	})

	t.Run("lost session is recovered once", func(t *testing.T) {
		r := &reloginRecorder{}
		attempts := 0
		got, err := withRelogin(ctx, r.relogin, func(context.Context) (int, error) {
			attempts++
			if attempts == 1 {
				return 0, loginFailed("guest page")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 2, attempts)
		assert.Equal(t, 1, r.calls)
	})

	t.Run("gives up after one retry", func(t *testing.T) {
		r := &reloginRecorder{}
		attempts := 0
		_, err := withRelogin(ctx, r.relogin, func(context.Context) (int, error) {
			attempts++
			return 0, loginFailed("guest page")
		})
		assert.ErrorIs(t, err, ErrLoginFailed)
		assert.Equal(t, 2, attempts)
		assert.Equal(t, 1, r.calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		r := &reloginRecorder{}
		attempts := 0
		_, err := withRelogin(ctx, r.relogin, func(context.Context) (int, error) {
			attempts++
			return 0, errOther
		})
		assert.ErrorIs(t, err, errOther)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 0, r.calls)
	})

	t.Run("failed relogin ends the loop", func(t *testing.T) {
		r := &reloginRecorder{err: loginFailed("rejected")}
		attempts := 0
		_, err := withRelogin(ctx, r.relogin, func(context.Context) (int, error) {
			attempts++
			return 0, loginFailed("guest page")
		})
		assert.ErrorIs(t, err, ErrLoginFailed)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, r.calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		r := &reloginRecorder{}
		_, err := withRelogin(cctx, r.relogin, func(context.Context) (int, error) {
			return 0, loginFailed("guest page")
		})
		assert.Error(t, err)
		assert.Equal(t, 0, r.calls)
	})
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticating", StateAuthenticating.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
