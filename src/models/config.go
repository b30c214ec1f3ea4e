package models

// GridConfig controls the candidate strike band generated around the stock
// price.
type GridConfig struct {
	Range float64 `yaml:"range"` // distance of the band boundaries from the stock price
	Step  float64 `yaml:"step"`  // strike increment within the band
}

// PayoffConfig controls the stock price axis of the payoff curve.
type PayoffConfig struct {
	StockRange float64 `yaml:"stockRange"` // distance beyond the outer strikes
	PriceStep  float64 `yaml:"priceStep"`
}

// FilterConfig holds the thresholds a trade must clear to be reported.
type FilterConfig struct {
	MinLegPremium     float64 `yaml:"minLegPremium"`
	MinExpectedResult float64 `yaml:"minExpectedResult"`
}

// InputBounds are the documented ranges the analyzer accepts for market
// parameters. The pricing engine additionally rejects anything that would
// break the closed-form math, regardless of these bounds.
type InputBounds struct {
	MinStockPrice   float64 `yaml:"minStockPrice"`
	MaxStockPrice   float64 `yaml:"maxStockPrice"`
	MinDTE          int     `yaml:"minDTE"`
	MaxDTE          int     `yaml:"maxDTE"`
	MinImpliedVol   float64 `yaml:"minImpliedVol"`
	MaxImpliedVol   float64 `yaml:"maxImpliedVol"`
	MinRiskFreeRate float64 `yaml:"minRiskFreeRate"`
	MaxRiskFreeRate float64 `yaml:"maxRiskFreeRate"`
}

type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Payoff PayoffConfig `yaml:"payoff"`
	Filter FilterConfig `yaml:"filter"`
	Bounds InputBounds  `yaml:"bounds"`
}

func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Range: 5.0,
			Step:  0.5,
		},
		Payoff: PayoffConfig{
			StockRange: 15.0,
			PriceStep:  0.5,
		},
		Filter: FilterConfig{
			MinLegPremium:     0.08,
			MinExpectedResult: 0.05,
		},
		Bounds: InputBounds{
			MinStockPrice:   20.0,
			MaxStockPrice:   200.0,
			MinDTE:          1,
			MaxDTE:          360,
			MinImpliedVol:   10.0,
			MaxImpliedVol:   150.0,
			MinRiskFreeRate: 1.0,
			MaxRiskFreeRate: 4.0,
		},
	}
}
