package status

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	t.Run("string code", func(t *testing.T) {
		for _, code := range KnownCodes {
			require.Equal(t, strconv.Itoa(int(code)), StringCode(code))
		}
	})

	t.Run("every known code has a text", func(t *testing.T) {
		for _, code := range KnownCodes {
			require.NotEqual(t, Status("Unknown Status Code"), Text(code), code)
		}

		require.Equal(t, Status("Unknown Status Code"), Text(599))
	})
}

func TestHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("serve file: %w", ErrNotFound)

	var httpErr HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	require.Equal(t, NotFound, httpErr.Code)
	require.ErrorIs(t, wrapped, ErrNotFound)
	require.NotErrorIs(t, wrapped, ErrMalformedRequest)
}
