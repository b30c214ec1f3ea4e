package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

func TestPriceOption(t *testing.T) {
	t.Run("call value and delta", func(t *testing.T) {
		in := models.MarketInput{StockPrice: 65, DTE: 30, ImpliedVol: 35, RiskFreeRate: 2.493}

		leg, err := PriceOption(in, 60, models.Call)
		require.NoError(t, err)

		assert.InDelta(t, 5.85, leg.Value, 0.05)
		assert.Greater(t, leg.Value, 0.0)
		assert.Greater(t, leg.Greeks.Delta, 0.0)
		assert.Less(t, leg.Greeks.Delta, 1.0)
		assert.InDelta(t, 0.807, leg.Greeks.Delta, 0.01)
	})

	t.Run("put-call parity", func(t *testing.T) {
		inputs := []models.MarketInput{
			{StockPrice: 65, DTE: 30, ImpliedVol: 35, RiskFreeRate: 2.493},
			{StockPrice: 40, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2.5136},
			{StockPrice: 100, DTE: 180, ImpliedVol: 20, RiskFreeRate: 1.5},
			{StockPrice: 25, DTE: 1, ImpliedVol: 150, RiskFreeRate: 4},
		}

		for _, in := range inputs {
			for _, strike := range []float64{in.StockPrice * 0.9, in.StockPrice, in.StockPrice * 1.1} {
				call, err := PriceOption(in, strike, models.Call)
				require.NoError(t, err)

				put, err := PriceOption(in, strike, models.Put)
				require.NoError(t, err)

				forward := in.StockPrice - strike*math.Exp(-in.RiskFreeRate/100.0*in.TimeToExpiry())
				assert.InDelta(t, forward, call.Value-put.Value, 1e-4)
			}
		}
	})

	t.Run("at the money is stable and positive", func(t *testing.T) {
		in := models.MarketInput{StockPrice: 50, DTE: 30, ImpliedVol: 25, RiskFreeRate: 2}

		call, err := PriceOption(in, 50, models.Call)
		require.NoError(t, err)

		put, err := PriceOption(in, 50, models.Put)
		require.NoError(t, err)

		assert.Greater(t, call.Value, 0.0)
		assert.Greater(t, put.Value, 0.0)
		assert.False(t, math.IsNaN(call.Value))
		assert.False(t, math.IsNaN(put.Value))
	})

	t.Run("boundary inputs stay finite", func(t *testing.T) {
		in := models.MarketInput{StockPrice: 40, DTE: 1, ImpliedVol: 10, RiskFreeRate: 1}

		for _, optionType := range []models.OptionType{models.Call, models.Put} {
			leg, err := PriceOption(in, 40, optionType)
			require.NoError(t, err)

			assert.False(t, math.IsNaN(leg.Value))
			assert.False(t, math.IsInf(leg.Value, 0))
			assert.GreaterOrEqual(t, leg.Value, 0.0)
			assert.False(t, math.IsNaN(leg.Greeks.Gamma))
		}
	})

	t.Run("greeks conventions", func(t *testing.T) {
		in := models.MarketInput{StockPrice: 60, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2.5136}

		call, err := PriceOption(in, 60, models.Call)
		require.NoError(t, err)

		put, err := PriceOption(in, 60, models.Put)
		require.NoError(t, err)

		assert.Greater(t, call.Greeks.Gamma, 0.0)
		assert.InDelta(t, call.Greeks.Gamma, put.Greeks.Gamma, 1e-12)
		assert.InDelta(t, call.Greeks.Vega, put.Greeks.Vega, 1e-12)
		assert.Less(t, call.Greeks.Theta, 0.0)
		assert.Greater(t, call.Greeks.Rho, 0.0)
		assert.Less(t, put.Greeks.Rho, 0.0)
		assert.Greater(t, put.Greeks.Delta, -1.0)
		assert.Less(t, put.Greeks.Delta, 0.0)

		// Delta of a call and a put at the same strike differ by one.
		assert.InDelta(t, 1.0, call.Greeks.Delta-put.Greeks.Delta, 1e-12)
	})

	t.Run("invalid input is rejected before computation", func(t *testing.T) {
		valid := models.MarketInput{StockPrice: 60, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2.5136}

		testCases := []struct {
			name   string
			in     models.MarketInput
			strike float64
		}{
			{"zero stock price", models.MarketInput{StockPrice: 0, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2}, 60},
			{"negative stock price", models.MarketInput{StockPrice: -10, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2}, 60},
			{"zero strike", valid, 0},
			{"zero dte", models.MarketInput{StockPrice: 60, DTE: 0, ImpliedVol: 40, RiskFreeRate: 2}, 60},
			{"zero implied vol", models.MarketInput{StockPrice: 60, DTE: 30, ImpliedVol: 0, RiskFreeRate: 2}, 60},
			{"negative rate", models.MarketInput{StockPrice: 60, DTE: 30, ImpliedVol: 40, RiskFreeRate: -1}, 60},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := PriceOption(tc.in, tc.strike, models.Put)
				assert.ErrorIs(t, err, models.InvalidInputErr)
			})
		}
	})

	t.Run("invalid option type", func(t *testing.T) {
		in := models.MarketInput{StockPrice: 60, DTE: 30, ImpliedVol: 40, RiskFreeRate: 2.5136}

		_, err := PriceOption(in, 60, models.OptionType("straddle"))
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}
