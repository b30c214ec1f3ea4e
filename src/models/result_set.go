package models

import "fmt"

// ResultSet is an ordered list of evaluated spreads, sorted descending by
// expected result. Index 0 holds the trade with the highest ER.
type ResultSet []SpreadTrade

func (rs ResultSet) Top() (SpreadTrade, error) {
	if len(rs) == 0 {
		return SpreadTrade{}, fmt.Errorf("ResultSet.Top: %w", NoTradeFoundErr)
	}

	return rs[0], nil
}

func (rs ResultSet) ToDTO() []*SpreadTradeDTO {
	dtos := make([]*SpreadTradeDTO, 0, len(rs))
	for _, trade := range rs {
		dtos = append(dtos, trade.ToDTO())
	}

	return dtos
}

// Rows returns the positional form of each trade, preserving index
// compatibility for external consumers.
func (rs ResultSet) Rows() [][]float64 {
	rows := make([][]float64, 0, len(rs))
	for _, trade := range rs {
		rows = append(rows, trade.Row())
	}

	return rows
}
