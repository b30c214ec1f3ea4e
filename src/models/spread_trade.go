package models

import "math"

// SpreadTrade is one evaluated vertical spread. Derived from two option legs
// sharing the same MarketInput; immutable once computed.
type SpreadTrade struct {
	Strategy          StrategyType `json:"strategy"`
	LowerStrike       float64      `json:"lowerStrike"`
	LowerLegValue     float64      `json:"lowerLegValue"`
	HigherStrike      float64      `json:"higherStrike"`
	HigherLegValue    float64      `json:"higherLegValue"`
	BreakEvenPoint    float64      `json:"breakEvenPoint"`
	ProbabilityOfGain float64      `json:"probabilityOfGain"`
	ProbabilityOfLoss float64      `json:"probabilityOfLoss"`
	MaxGain           float64      `json:"maxGain"`
	MaxLoss           float64      `json:"maxLoss"`
	ExpectedResult    float64      `json:"expectedResult"`
}

// Width is the distance between the two strikes.
func (t SpreadTrade) Width() float64 {
	return t.HigherStrike - t.LowerStrike
}

// BEPDistance is the absolute distance between the break even point and the
// current stock price. Used as the final sort tie-breaker.
func (t SpreadTrade) BEPDistance(stockPrice float64) float64 {
	return math.Abs(t.BreakEvenPoint - stockPrice)
}

// Row returns the trade as the ten positional fields external consumers
// expect: lower strike, lower leg value, higher strike, higher leg value,
// BEP, probability of gain, probability of loss, max gain, max loss, ER.
func (t SpreadTrade) Row() []float64 {
	return []float64{
		t.LowerStrike,
		t.LowerLegValue,
		t.HigherStrike,
		t.HigherLegValue,
		t.BreakEvenPoint,
		t.ProbabilityOfGain,
		t.ProbabilityOfLoss,
		t.MaxGain,
		t.MaxLoss,
		t.ExpectedResult,
	}
}
