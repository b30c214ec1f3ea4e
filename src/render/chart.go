package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/Zsolt-Forray/options-strategies/src/models"
	"github.com/Zsolt-Forray/options-strategies/src/strategies"
)

// RenderPayoffChart draws the expiration profit/loss profile of a trade.
// The x axis follows the curve's stock price band.
func RenderPayoffChart(curve strategies.PayoffCurve, strategy models.StrategyType) string {
	caption := fmt.Sprintf("Profit / Loss Profile (stock price %.1f to %.1f) - strategy: %s",
		curve.StockPrices[0], curve.StockPrices[len(curve.StockPrices)-1], strategy)

	return asciigraph.Plot(curve.Payoffs,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
}
