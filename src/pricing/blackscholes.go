package pricing

import (
	"fmt"
	"math"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

// PriceOption values a European-style option on a non-dividend stock with
// the Black-Scholes closed-form model and fills in its analytic Greeks.
// Theta is quoted per calendar day, vega and rho per 1% move, matching the
// calculator's documented output units.
func PriceOption(in models.MarketInput, strike float64, optionType models.OptionType) (models.OptionLeg, error) {
	if err := optionType.Validate(); err != nil {
		return models.OptionLeg{}, fmt.Errorf("PriceOption: %v: %w", err, models.InvalidInputErr)
	}

	// Reject anything that would produce a log of a non-positive number or a
	// division by zero in d1/d2 before touching the float math.
	if in.StockPrice <= 0 {
		return models.OptionLeg{}, fmt.Errorf("PriceOption: stock price %.2f must be positive: %w", in.StockPrice, models.InvalidInputErr)
	}

	if strike <= 0 {
		return models.OptionLeg{}, fmt.Errorf("PriceOption: strike %.2f must be positive: %w", strike, models.InvalidInputErr)
	}

	if in.DTE < 1 {
		return models.OptionLeg{}, fmt.Errorf("PriceOption: DTE %d must be at least 1: %w", in.DTE, models.InvalidInputErr)
	}

	if in.ImpliedVol <= 0 {
		return models.OptionLeg{}, fmt.Errorf("PriceOption: implied volatility %.2f must be positive: %w", in.ImpliedVol, models.InvalidInputErr)
	}

	if in.RiskFreeRate < 0 {
		return models.OptionLeg{}, fmt.Errorf("PriceOption: risk-free rate %.4f must not be negative: %w", in.RiskFreeRate, models.InvalidInputErr)
	}

	s := in.StockPrice
	t := in.TimeToExpiry()
	v := in.ImpliedVol / 100.0
	r := in.RiskFreeRate / 100.0

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/strike) + (r+v*v/2)*t) / (v * sqrtT)
	d2 := d1 - v*sqrtT

	discountedStrike := strike * math.Exp(-r*t)
	density := NormPDF(d1)

	leg := models.OptionLeg{
		Strike: strike,
		Type:   optionType,
	}

	// Gamma and vega are identical for calls and puts.
	gamma := density / (s * v * sqrtT)
	vega := s * sqrtT * density / 100.0
	thetaCommon := -s * v * density / (2 * sqrtT)

	switch optionType {
	case models.Call:
		leg.Value = s*NormCDF(d1) - discountedStrike*NormCDF(d2)
		leg.Greeks = models.Greeks{
			Delta: NormCDF(d1),
			Gamma: gamma,
			Theta: (thetaCommon - r*discountedStrike*NormCDF(d2)) / 365.0,
			Vega:  vega,
			Rho:   t * discountedStrike * NormCDF(d2) / 100.0,
		}
	case models.Put:
		leg.Value = discountedStrike*NormCDF(-d2) - s*NormCDF(-d1)
		leg.Greeks = models.Greeks{
			Delta: -NormCDF(-d1),
			Gamma: gamma,
			Theta: (thetaCommon + r*discountedStrike*NormCDF(-d2)) / 365.0,
			Vega:  vega,
			Rho:   -t * discountedStrike * NormCDF(-d2) / 100.0,
		}
	}

	return leg, nil
}
