package engine

import (
	"github.com/nirre55/trading-simulator/internal/domain"
)

// maxLadderEntries caps single-rate cascade generation so a tiny drop rate
// cannot loop unbounded before reaching the stop-loss.
const maxLadderEntries = 99

// GenerateLadder derives the ordered entry prices for a snapshot. Index 0 is
// the chronologically first trade.
//
// Manual: the provided prices verbatim. Calculated with an explicit
// percentage list: the initial price is a reference point, not a rung, and
// every computed price is included even below the stop-loss. Calculated with
// a single rate: the initial price is the first rung and generation stops
// after appending the first price at or below the stop-loss.
//
// Degenerate calculated inputs (non-positive initial price, no percentages)
// yield an empty ladder; callers short-circuit to the default result.
func GenerateLadder(p domain.InputParameters, variant domain.Variant) []float64 {
	if variant == domain.VariantManual {
		return append([]float64(nil), p.EntryPrices...)
	}
	return generateCalculated(p)
}

func generateCalculated(p domain.InputParameters) []float64 {
	if p.InitialEntryPrice <= 0 {
		return nil
	}
	if len(p.DropPercentages) > 0 {
		return cascadeFromList(p.InitialEntryPrice, p.DropPercentages)
	}
	if p.DropPercentage > 0 {
		return cascadeAtRate(p.InitialEntryPrice, p.DropPercentage, p.StopLoss)
	}
	return nil
}

// cascadeFromList applies each drop in sequence to the running price. Ladder
// length equals the number of percentages.
func cascadeFromList(initial float64, drops []float64) []float64 {
	ladder := make([]float64, 0, len(drops))
	last := initial
	for _, drop := range drops {
		last *= 1 - drop/100
		ladder = append(ladder, last)
	}
	return ladder
}

// cascadeAtRate drops repeatedly from the initial price. The first rung at or
// below the stop-loss is kept so the ladder always reaches the exit floor.
func cascadeAtRate(initial, rate, stopLoss float64) []float64 {
	ladder := []float64{initial}
	last := initial
	for len(ladder) < maxLadderEntries {
		next := last * (1 - rate/100)
		ladder = append(ladder, next)
		if next <= stopLoss {
			break
		}
		last = next
	}
	return ladder
}
