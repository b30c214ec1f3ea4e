package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSet(t *testing.T) {
	trade := SpreadTrade{
		Strategy:          BullPutSpread,
		LowerStrike:       55.0,
		LowerLegValue:     0.82,
		HigherStrike:      65.0,
		HigherLegValue:    5.92,
		BreakEvenPoint:    59.9,
		ProbabilityOfGain: 0.506,
		ProbabilityOfLoss: 0.494,
		MaxGain:           5.1,
		MaxLoss:           -4.9,
		ExpectedResult:    0.134,
	}

	t.Run("top of empty set", func(t *testing.T) {
		_, err := ResultSet{}.Top()
		assert.ErrorIs(t, err, NoTradeFoundErr)
	})

	t.Run("top returns the first trade", func(t *testing.T) {
		rs := ResultSet{trade, {ExpectedResult: 0.01}}

		top, err := rs.Top()
		require.NoError(t, err)
		assert.Equal(t, trade, top)
	})

	t.Run("positional rows", func(t *testing.T) {
		rows := ResultSet{trade}.Rows()
		require.Len(t, rows, 1)

		expected := []float64{55.0, 0.82, 65.0, 5.92, 59.9, 0.506, 0.494, 5.1, -4.9, 0.134}
		assert.Equal(t, expected, rows[0])
	})

	t.Run("width and bep distance", func(t *testing.T) {
		assert.Equal(t, 10.0, trade.Width())
		assert.InDelta(t, 0.1, trade.BEPDistance(60.0), 1e-9)
	})
}
