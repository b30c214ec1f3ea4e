package strategies

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

type Evaluator struct {
	cfg models.Config
}

func NewEvaluator(cfg models.Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate walks the strike grid, builds a spread per pair and returns the
// qualifying trades sorted descending by expected result. It fails with
// models.NoTradeFoundErr when no pair clears the filter thresholds, so
// callers can tell "no profitable trade" apart from a computation error.
func (e *Evaluator) Evaluate(in models.MarketInput, strategy models.StrategyType) (models.ResultSet, error) {
	if err := strategy.Validate(); err != nil {
		return nil, fmt.Errorf("Evaluator.Evaluate: %w", err)
	}

	if err := in.Validate(e.cfg.Bounds); err != nil {
		return nil, fmt.Errorf("Evaluator.Evaluate: %w", err)
	}

	grid, err := NewStrikeGrid(in.StockPrice, e.cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("Evaluator.Evaluate: %w", err)
	}

	var results models.ResultSet
	evaluated := 0
	for {
		pair, ok := grid.Next()
		if !ok {
			break
		}

		trade, err := BuildSpread(in, pair, strategy)
		if err != nil {
			return nil, fmt.Errorf("Evaluator.Evaluate: pair (%.1f, %.1f): %w", pair.Lower, pair.Higher, err)
		}

		evaluated++
		if e.keep(trade) {
			results = append(results, trade)
		}
	}

	log.Debugf("evaluated %d strike pairs for %s, %d qualified", evaluated, strategy, len(results))

	if len(results) == 0 {
		return nil, fmt.Errorf("Evaluator.Evaluate: %w", models.NoTradeFoundErr)
	}

	e.sortResults(results, in.StockPrice)

	return results, nil
}

// keep requires both legs to carry a tradeable premium and the expected
// result to clear the configured floor.
func (e *Evaluator) keep(trade models.SpreadTrade) bool {
	if trade.LowerLegValue <= e.cfg.Filter.MinLegPremium {
		return false
	}

	if trade.HigherLegValue <= e.cfg.Filter.MinLegPremium {
		return false
	}

	return trade.ExpectedResult > e.cfg.Filter.MinExpectedResult
}

// sortResults orders by descending expected result; ties go to the narrower
// spread, then to the break even point closest to the stock price, so the
// ordering is deterministic.
func (e *Evaluator) sortResults(results models.ResultSet, stockPrice float64) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		if a.ExpectedResult != b.ExpectedResult {
			return a.ExpectedResult > b.ExpectedResult
		}

		if a.Width() != b.Width() {
			return a.Width() < b.Width()
		}

		return a.BEPDistance(stockPrice) < b.BEPDistance(stockPrice)
	})
}
