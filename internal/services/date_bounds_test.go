package services

import (
	"testing"
	"time"

	apierrors "api/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateBounds(t *testing.T) {
	location := time.FixedZone("MSK", 3*60*60)

	t.Run("both bounds cover whole days", func(t *testing.T) {
		from, to, err := ParseDateBounds("2026-03-01", "2026-03-15", location)
		require.NoError(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)

		assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, location), *from)
		assert.Equal(t, time.Date(2026, time.March, 15, 23, 59, 59, 999000000, location), *to)
	})

	t.Run("either side may be empty", func(t *testing.T) {
		from, to, err := ParseDateBounds("", "2026-03-15", location)
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.NotNil(t, to)

		from, to, err = ParseDateBounds("2026-03-01", "  ", location)
		require.NoError(t, err)
		assert.NotNil(t, from)
		assert.Nil(t, to)

		from, to, err = ParseDateBounds("", "", location)
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		_, _, err := ParseDateBounds("15.03.2026", "", location)
		assertAPIError(t, err, 400, apierrors.ErrInvalidDate)

		_, _, err = ParseDateBounds("", "2026-13-40", location)
		assertAPIError(t, err, 400, apierrors.ErrInvalidDate)
	})

	t.Run("inverted pair is rejected", func(t *testing.T) {
		_, _, err := ParseDateBounds("2026-03-15", "2026-03-01", location)
		assertAPIError(t, err, 400, apierrors.ErrInvalidDate)
	})

	t.Run("same day is a valid one day window", func(t *testing.T) {
		from, to, err := ParseDateBounds("2026-03-15", "2026-03-15", location)
		require.NoError(t, err)
		assert.True(t, from.Before(*to))
	})
}
