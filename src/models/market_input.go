package models

import (
	"fmt"
	"math"
)

// MarketInput holds the market parameters shared by every option leg priced
// within a single evaluation run.
type MarketInput struct {
	StockPrice   float64 `json:"stockPrice"`
	DTE          int     `json:"dte"`
	ImpliedVol   float64 `json:"impliedVol"`   // annual implied volatility, in percent
	RiskFreeRate float64 `json:"riskFreeRate"` // annual risk-free rate, in percent
}

func (in MarketInput) Validate(bounds InputBounds) error {
	if in.StockPrice < bounds.MinStockPrice || in.StockPrice > bounds.MaxStockPrice {
		return fmt.Errorf("MarketInput.Validate: stock price %.2f outside [%.1f, %.1f]: %w", in.StockPrice, bounds.MinStockPrice, bounds.MaxStockPrice, InvalidInputErr)
	}

	if in.DTE < bounds.MinDTE || in.DTE > bounds.MaxDTE {
		return fmt.Errorf("MarketInput.Validate: DTE %d outside [%d, %d]: %w", in.DTE, bounds.MinDTE, bounds.MaxDTE, InvalidInputErr)
	}

	if in.ImpliedVol < bounds.MinImpliedVol || in.ImpliedVol > bounds.MaxImpliedVol {
		return fmt.Errorf("MarketInput.Validate: implied volatility %.2f outside [%.1f, %.1f]: %w", in.ImpliedVol, bounds.MinImpliedVol, bounds.MaxImpliedVol, InvalidInputErr)
	}

	if in.RiskFreeRate < bounds.MinRiskFreeRate || in.RiskFreeRate > bounds.MaxRiskFreeRate {
		return fmt.Errorf("MarketInput.Validate: risk-free rate %.4f outside [%.1f, %.1f]: %w", in.RiskFreeRate, bounds.MinRiskFreeRate, bounds.MaxRiskFreeRate, InvalidInputErr)
	}

	return nil
}

// TimeToExpiry returns the year fraction used by the pricing model.
func (in MarketInput) TimeToExpiry() float64 {
	return float64(in.DTE) / 365.0
}

// PeriodVol returns the volatility of the log return over the remaining
// life of the option.
func (in MarketInput) PeriodVol() float64 {
	v := in.ImpliedVol / 100.0
	t := in.TimeToExpiry()
	return v * math.Sqrt(t)
}
