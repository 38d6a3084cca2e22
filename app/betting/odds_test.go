package betting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddsmith/punt/models"
)

func TestToDecimal(t *testing.T) {
	t.Run("decimal passes through unchanged", func(t *testing.T) {
		dec, err := ToDecimal(2.5, OddsFormatDecimal)
		require.NoError(t, err)
		assert.Equal(t, 2.5, dec)
	})

	t.Run("empty format defaults to decimal", func(t *testing.T) {
		dec, err := ToDecimal(1.91, "")
		require.NoError(t, err)
		assert.Equal(t, 1.91, dec)
	})

	t.Run("decimal below even money is not rejected", func(t *testing.T) {
		// Garbage prices are the caller's problem; conversion stays exact.
		dec, err := ToDecimal(0.5, OddsFormatDecimal)
		require.NoError(t, err)
		assert.Equal(t, 0.5, dec)
	})

	t.Run("positive american", func(t *testing.T) {
		dec, err := ToDecimal(150, OddsFormatAmerican)
		require.NoError(t, err)
		assert.Equal(t, 2.5, dec)

		dec, err = ToDecimal(100, OddsFormatAmerican)
		require.NoError(t, err)
		assert.Equal(t, 2.0, dec)
	})

	t.Run("negative american", func(t *testing.T) {
		dec, err := ToDecimal(-120, OddsFormatAmerican)
		require.NoError(t, err)
		assert.InDelta(t, 1.8333333333, dec, 1e-9)

		dec, err = ToDecimal(-200, OddsFormatAmerican)
		require.NoError(t, err)
		assert.Equal(t, 1.5, dec)
	})

	t.Run("zero american is rejected", func(t *testing.T) {
		_, err := ToDecimal(0, OddsFormatAmerican)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidOddsFormat)
	})

	t.Run("unsupported format is rejected", func(t *testing.T) {
		_, err := ToDecimal(2.5, "fractional")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidOddsFormat)
		assert.Contains(t, err.Error(), "fractional")
	})

	t.Run("format is case-insensitive and trimmed", func(t *testing.T) {
		dec, err := ToDecimal(150, " American ")
		require.NoError(t, err)
		assert.Equal(t, 2.5, dec)

		dec, err = ToDecimal(2.5, "DECIMAL")
		require.NoError(t, err)
		assert.Equal(t, 2.5, dec)
	})
}

func TestImpliedProbability(t *testing.T) {
	assert.InDelta(t, 0.4, ImpliedProbability(2.5), 1e-9)
	assert.InDelta(t, 0.5, ImpliedProbability(2.0), 1e-9)
	assert.InDelta(t, 0.5454545454, ImpliedProbability(1.8333333333), 1e-9)

	// A zero price propagates as +Inf; rejecting it is the API layer's job.
	assert.True(t, math.IsInf(ImpliedProbability(0), 1))
}
