package models

// Greeks are the sensitivities of an option's theoretical value. Theta is
// quoted per calendar day, vega and rho per 1% move.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// OptionLeg is a single priced option. It is created by the pricing engine
// and never mutated afterwards.
type OptionLeg struct {
	Strike float64    `json:"strike"`
	Type   OptionType `json:"type"`
	Value  float64    `json:"value"`
	Greeks Greeks     `json:"greeks"`
}
