package strategies

import (
	"math"

	"github.com/Zsolt-Forray/options-strategies/src/models"
	"github.com/Zsolt-Forray/options-strategies/src/pricing"
	"github.com/Zsolt-Forray/options-strategies/src/utils"
)

type spreadStats struct {
	probGain       float64
	probLoss       float64
	maxGain        float64
	maxLoss        float64
	expectedResult float64
}

// computeStats derives the probability of gain/loss, the fixed payoff bounds
// and the expected result of a vertical spread from the lognormal terminal
// price distribution implied by the market input.
//
// The terminal log-return axis is split at the lower strike, the break even
// point and the higher strike (with +/-4 sigma tails). Each section
// contributes its probability mass and its expected payoff: the two wings
// pay the fixed spread bounds, the two middle sections pay linearly in the
// terminal price, valued through the lognormal partial expectation
// S*exp(sigma_p^2/2)*Nx.
func computeStats(in models.MarketInput, strategy models.StrategyType, pair StrikePair, lowerValue, higherValue, bep float64) spreadStats {
	s := in.StockPrice
	periodVol := in.PeriodVol()

	z := [5]float64{
		-4,
		math.Log(pair.Lower/s) / periodVol,
		math.Log(bep/s) / periodVol,
		math.Log(pair.Higher/s) / periodVol,
		4,
	}

	var pr [4]float64
	for i := range pr {
		pr[i] = pricing.NormCDF(z[i+1]) - pricing.NormCDF(z[i])
	}

	nx12 := pricing.NormCDF(z[2]-periodVol) - pricing.NormCDF(z[1]-periodVol)
	nx23 := pricing.NormCDF(z[3]-periodVol) - pricing.NormCDF(z[2]-periodVol)

	growth := s * math.Exp(periodVol*periodVol/2)

	var er [4]float64
	er[1] = growth*nx12 - bep*pr[1]
	er[2] = growth*nx23 - bep*pr[2]

	var maxGain, maxLoss float64
	switch strategy {
	case models.BullCallSpread:
		er[0] = (higherValue - lowerValue) * pr[0]
		er[3] = (pair.Higher - bep) * pr[3]
		maxGain = utils.RoundTo(pair.Higher-bep, 2)
		maxLoss = utils.RoundTo(higherValue-lowerValue, 2)
	case models.BullPutSpread:
		er[0] = (pair.Lower - bep) * pr[0]
		er[3] = (higherValue - lowerValue) * pr[3]
		maxGain = utils.RoundTo(higherValue-lowerValue, 2)
		maxLoss = utils.RoundTo(pair.Lower-bep, 2)
	}

	// The gain probability is the mass of the sections with a positive
	// expected payoff, i.e. the probability of the terminal price ending on
	// the profitable side of the break even point.
	var probGain, total float64
	for i, sectionER := range er {
		total += sectionER
		if sectionER > 0 {
			probGain += pr[i]
		}
	}

	probGain = utils.RoundTo(probGain, 3)

	return spreadStats{
		probGain:       probGain,
		probLoss:       utils.RoundTo(1-probGain, 3),
		maxGain:        maxGain,
		maxLoss:        maxLoss,
		expectedResult: utils.RoundTo(total, 3),
	}
}
