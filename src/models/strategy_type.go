package models

import "fmt"

type StrategyType string

const (
	BullPutSpread  StrategyType = "bull_put_spread"
	BullCallSpread StrategyType = "bull_call_spread"
)

func (s StrategyType) Validate() error {
	if s != BullPutSpread && s != BullCallSpread {
		return fmt.Errorf("StrategyType: Validate: %s: %w", s, UnsupportedStrategyErr)
	}

	return nil
}

// LegType returns the option type both legs of the spread are built from.
// Bull put spreads sell the higher-strike put and buy the lower-strike put;
// bull call spreads buy the lower-strike call and sell the higher-strike call.
func (s StrategyType) LegType() OptionType {
	if s == BullPutSpread {
		return Put
	}

	return Call
}
