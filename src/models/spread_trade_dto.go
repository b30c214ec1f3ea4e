package models

type SpreadTradeDTO struct {
	Strategy          string  `csv:"strategy" json:"strategy"`
	LowerStrike       float64 `csv:"lower_strike" json:"lowerStrike"`
	LowerLegValue     float64 `csv:"lower_leg_value" json:"lowerLegValue"`
	HigherStrike      float64 `csv:"higher_strike" json:"higherStrike"`
	HigherLegValue    float64 `csv:"higher_leg_value" json:"higherLegValue"`
	BreakEvenPoint    float64 `csv:"bep" json:"bep"`
	ProbabilityOfGain float64 `csv:"prob_gain" json:"probGain"`
	ProbabilityOfLoss float64 `csv:"prob_loss" json:"probLoss"`
	MaxGain           float64 `csv:"max_gain" json:"maxGain"`
	MaxLoss           float64 `csv:"max_loss" json:"maxLoss"`
	ExpectedResult    float64 `csv:"expected_result" json:"expectedResult"`
}

func (t SpreadTrade) ToDTO() *SpreadTradeDTO {
	return &SpreadTradeDTO{
		Strategy:          string(t.Strategy),
		LowerStrike:       t.LowerStrike,
		LowerLegValue:     t.LowerLegValue,
		HigherStrike:      t.HigherStrike,
		HigherLegValue:    t.HigherLegValue,
		BreakEvenPoint:    t.BreakEvenPoint,
		ProbabilityOfGain: t.ProbabilityOfGain,
		ProbabilityOfLoss: t.ProbabilityOfLoss,
		MaxGain:           t.MaxGain,
		MaxLoss:           t.MaxLoss,
		ExpectedResult:    t.ExpectedResult,
	}
}
