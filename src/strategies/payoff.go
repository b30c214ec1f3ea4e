package strategies

import (
	"math"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

const (
	ContractMultiplier = 100.0
	Contracts          = 1.0
)

// PayoffCurve is the expiration profit/loss profile of a spread over a band
// of terminal stock prices. Consumed by the chart adapter.
type PayoffCurve struct {
	StockPrices []float64
	Payoffs     []float64
}

// BuildPayoffCurve samples the payoff at expiration from below the lower
// strike to above the higher strike.
func BuildPayoffCurve(trade models.SpreadTrade, cfg models.PayoffConfig) PayoffCurve {
	low := math.Max(trade.LowerStrike-cfg.StockRange, 0)
	high := trade.HigherStrike + cfg.StockRange

	var curve PayoffCurve
	for n := 0; ; n++ {
		price := low + float64(n)*cfg.PriceStep
		if price > high+1e-9 {
			break
		}

		curve.StockPrices = append(curve.StockPrices, price)
		curve.Payoffs = append(curve.Payoffs, payoffAt(trade, price)*ContractMultiplier*Contracts)
	}

	return curve
}

// payoffAt is flat at the spread's fixed bounds outside the strikes and
// linear in the terminal price between them.
func payoffAt(trade models.SpreadTrade, price float64) float64 {
	switch {
	case price <= trade.LowerStrike:
		if trade.Strategy == models.BullCallSpread {
			return trade.HigherLegValue - trade.LowerLegValue
		}

		return trade.LowerStrike - trade.BreakEvenPoint
	case price >= trade.HigherStrike:
		if trade.Strategy == models.BullCallSpread {
			return trade.HigherStrike - trade.BreakEvenPoint
		}

		return trade.HigherLegValue - trade.LowerLegValue
	default:
		return price - trade.BreakEvenPoint
	}
}
