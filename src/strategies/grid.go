package strategies

import (
	"fmt"
	"math"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

type StrikePair struct {
	Lower  float64
	Higher float64
}

// StrikeGrid is a finite, restartable iterator over the candidate
// (lower, higher) strike pairs around the stock price. The band spans the
// truncated boundaries stockPrice +/- Range at Step increments, and every
// emitted pair satisfies Lower < Higher.
type StrikeGrid struct {
	strikes []float64
	i, j    int
}

func NewStrikeGrid(stockPrice float64, cfg models.GridConfig) (*StrikeGrid, error) {
	if cfg.Range >= stockPrice {
		return nil, fmt.Errorf("NewStrikeGrid: range %.2f must be below the stock price %.2f: %w", cfg.Range, stockPrice, models.InvalidInputErr)
	}

	if cfg.Step <= 0 {
		return nil, fmt.Errorf("NewStrikeGrid: step %.2f must be positive: %w", cfg.Step, models.InvalidInputErr)
	}

	low := math.Trunc(stockPrice - cfg.Range)
	high := math.Trunc(stockPrice + cfg.Range)

	var strikes []float64
	for n := 0; ; n++ {
		strike := low + float64(n)*cfg.Step
		if strike > high+1e-9 {
			break
		}

		strikes = append(strikes, strike)
	}

	grid := &StrikeGrid{strikes: strikes}
	grid.Reset()

	return grid, nil
}

// Next emits the following pair, or false once the grid is exhausted.
func (g *StrikeGrid) Next() (StrikePair, bool) {
	for {
		if g.i >= len(g.strikes)-1 {
			return StrikePair{}, false
		}

		if g.j >= len(g.strikes) {
			g.i++
			g.j = g.i + 1
			continue
		}

		pair := StrikePair{Lower: g.strikes[g.i], Higher: g.strikes[g.j]}
		g.j++

		return pair, true
	}
}

// Reset rewinds the iterator to the first pair.
func (g *StrikeGrid) Reset() {
	g.i = 0
	g.j = 1
}

// Strikes returns a copy of the underlying strike band.
func (g *StrikeGrid) Strikes() []float64 {
	strikes := make([]float64, len(g.strikes))
	copy(strikes, g.strikes)

	return strikes
}
