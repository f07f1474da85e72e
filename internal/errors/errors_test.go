package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("preserves the error chain", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "course lookup")
		require.Error(t, wrapped)
		assert.True(t, errors.Is(wrapped, ErrNotFound))
		assert.Equal(t, "course lookup: not found", wrapped.Error())
	})

	t.Run("nil in, nil out", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
	})

	t.Run("double wrap keeps the sentinel", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrInvalidToken, "signature check"), "validate")
		assert.True(t, errors.Is(wrapped, ErrInvalidToken))
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrInvalidCredentials,
		ErrMissingToken,
		ErrInvalidToken,
		ErrForbidden,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestIsAndAs(t *testing.T) {
	wrapped := Wrap(ErrForbidden, "write section")
	assert.True(t, Is(wrapped, ErrForbidden))

	var target *customError
	assert.False(t, As(wrapped, &target))
}

type customError struct{}

func (c *customError) Error() string { return "custom" }
