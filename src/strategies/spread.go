package strategies

import (
	"fmt"

	"github.com/Zsolt-Forray/options-strategies/src/models"
	"github.com/Zsolt-Forray/options-strategies/src/pricing"
	"github.com/Zsolt-Forray/options-strategies/src/utils"
)

// BuildSpread prices both legs of a vertical spread and derives its break
// even point, probability of gain/loss, payoff bounds and expected result.
// Leg values are quoted to the cent before they enter the spread math.
func BuildSpread(in models.MarketInput, pair StrikePair, strategy models.StrategyType) (models.SpreadTrade, error) {
	legType := strategy.LegType()

	lowerLeg, err := pricing.PriceOption(in, pair.Lower, legType)
	if err != nil {
		return models.SpreadTrade{}, fmt.Errorf("BuildSpread: lower leg: %w", err)
	}

	higherLeg, err := pricing.PriceOption(in, pair.Higher, legType)
	if err != nil {
		return models.SpreadTrade{}, fmt.Errorf("BuildSpread: higher leg: %w", err)
	}

	lowerValue := utils.RoundTo(lowerLeg.Value, 2)
	higherValue := utils.RoundTo(higherLeg.Value, 2)

	bep := breakEvenPoint(strategy, pair, lowerValue, higherValue)
	stats := computeStats(in, strategy, pair, lowerValue, higherValue, bep)

	return models.SpreadTrade{
		Strategy:          strategy,
		LowerStrike:       pair.Lower,
		LowerLegValue:     lowerValue,
		HigherStrike:      pair.Higher,
		HigherLegValue:    higherValue,
		BreakEvenPoint:    bep,
		ProbabilityOfGain: stats.probGain,
		ProbabilityOfLoss: stats.probLoss,
		MaxGain:           stats.maxGain,
		MaxLoss:           stats.maxLoss,
		ExpectedResult:    stats.expectedResult,
	}, nil
}

// breakEvenPoint adjusts a strike by the net premium per the strategy's
// payoff geometry: lower strike plus net debit for a bull call spread,
// higher strike minus net credit for a bull put spread.
func breakEvenPoint(strategy models.StrategyType, pair StrikePair, lowerValue, higherValue float64) float64 {
	anchor := pair.Higher
	if strategy == models.BullCallSpread {
		anchor = pair.Lower
	}

	return utils.RoundTo(anchor-higherValue+lowerValue, 2)
}
