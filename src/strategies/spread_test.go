package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

// Reference vectors from the calculator this package reimplements:
// (S=60, DTE=30, IV=40, r=2.5136), strike pair (55, 65).
func TestBuildSpread(t *testing.T) {
	in := models.MarketInput{StockPrice: 60, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2.5136}
	pair := StrikePair{Lower: 55, Higher: 65}

	t.Run("bull call spread", func(t *testing.T) {
		trade, err := BuildSpread(in, pair, models.BullCallSpread)
		require.NoError(t, err)

		assert.Equal(t, 55.0, trade.LowerStrike)
		assert.InDelta(t, 5.94, trade.LowerLegValue, 0.01)
		assert.Equal(t, 65.0, trade.HigherStrike)
		assert.InDelta(t, 1.06, trade.HigherLegValue, 0.01)
		assert.InDelta(t, 59.88, trade.BreakEvenPoint, 0.01)
		assert.InDelta(t, 0.507, trade.ProbabilityOfGain, 0.001)
		assert.InDelta(t, 0.493, trade.ProbabilityOfLoss, 0.001)
		assert.InDelta(t, 5.12, trade.MaxGain, 0.01)
		assert.InDelta(t, -4.88, trade.MaxLoss, 0.01)
		assert.InDelta(t, 0.154, trade.ExpectedResult, 0.001)
	})

	t.Run("bull put spread", func(t *testing.T) {
		trade, err := BuildSpread(in, pair, models.BullPutSpread)
		require.NoError(t, err)

		assert.InDelta(t, 0.82, trade.LowerLegValue, 0.01)
		assert.InDelta(t, 5.92, trade.HigherLegValue, 0.01)
		assert.InDelta(t, 59.9, trade.BreakEvenPoint, 0.01)
		assert.InDelta(t, 0.506, trade.ProbabilityOfGain, 0.001)
		assert.InDelta(t, 0.494, trade.ProbabilityOfLoss, 0.001)
		assert.InDelta(t, 5.1, trade.MaxGain, 0.01)
		assert.InDelta(t, -4.9, trade.MaxLoss, 0.01)
		assert.InDelta(t, 0.134, trade.ExpectedResult, 0.001)
	})

	t.Run("probabilities sum to one", func(t *testing.T) {
		grid, err := NewStrikeGrid(in.StockPrice, models.DefaultConfig().Grid)
		require.NoError(t, err)

		for {
			p, ok := grid.Next()
			if !ok {
				break
			}

			trade, err := BuildSpread(in, p, models.BullPutSpread)
			require.NoError(t, err)

			assert.InDelta(t, 1.0, trade.ProbabilityOfGain+trade.ProbabilityOfLoss, 1e-9)
		}
	})

	t.Run("expected result matches the probability weighted bounds", func(t *testing.T) {
		// ER = P(gain)*MaxGain - P(loss)*MaxLoss, with MaxLoss carrying its
		// negative sign. The section decomposition sums to the same quantity
		// up to the linear middle sections, so only a loose check is possible.
		trade, err := BuildSpread(in, pair, models.BullPutSpread)
		require.NoError(t, err)

		upper := trade.ProbabilityOfGain * trade.MaxGain
		lower := trade.ProbabilityOfLoss * trade.MaxLoss
		assert.Less(t, trade.ExpectedResult, upper)
		assert.Greater(t, trade.ExpectedResult, lower)
	})

	t.Run("invalid market input propagates", func(t *testing.T) {
		bad := models.MarketInput{StockPrice: 60, DTE: 0, ImpliedVol: 40, RiskFreeRate: 2.5136}

		_, err := BuildSpread(bad, pair, models.BullPutSpread)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}
