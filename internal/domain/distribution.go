package domain

import "github.com/shopspring/decimal"

// StashDistribution is one participant's share of consumption within a window.
type StashDistribution struct {
	ParticipantID string
	Name          string
	Counts        map[string]int
	TotalCount    int
	Grams         decimal.Decimal
	Cost          decimal.Decimal
	Percentage    float64
}
