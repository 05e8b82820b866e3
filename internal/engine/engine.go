// Package engine implements the position-sizing calculation core: input
// validation, entry-ladder derivation, and per-trade plus aggregate risk
// metrics. Every function is pure and synchronous; one InputParameters
// snapshot in, one freshly allocated result out.
package engine

import (
	"github.com/nirre55/trading-simulator/internal/domain"
)

// Calculate assembles the full result for one snapshot:
//  1. Derive the entry ladder for the variant
//  2. Short-circuit an empty ladder to the all-zero default
//  3. Compute aggregate metrics, then the per-trade breakdown
//
// It performs no validation; callers run the validators first and only invoke
// this on a clean ErrorMap. It never panics on structurally empty input.
func Calculate(p domain.InputParameters, variant domain.Variant) domain.CalculationResult {
	ladder := GenerateLadder(p, variant)
	if len(ladder) == 0 {
		return domain.DefaultResult(variant)
	}

	agg := ComputeAggregate(ladder, p)
	realAmountPerTrade := p.Balance / float64(len(ladder))

	details := ComputeTradeDetails(ladder, DetailInputs{
		Leverage:           p.Leverage,
		AmountPerTrade:     agg.AmountPerTrade,
		RealAmountPerTrade: realAmountPerTrade,
		GainTarget:         p.GainTarget,
		MakerFee:           p.MakerFee,
		FundingFee:         p.FundingFee,
		Duration:           p.Duration,
		Recovery:           p.Recovery,
	})

	return domain.CalculationResult{
		PositionSize:       agg.PositionSize,
		NumberOfTrades:     len(ladder),
		AmountPerTrade:     agg.AmountPerTrade,
		RealAmountPerTrade: realAmountPerTrade,
		AverageEntryPrice:  agg.AverageEntryPrice,
		RiskTotal:          agg.RiskTotal,
		ProfitTarget:       agg.ProfitTarget,
		TotalFees:          agg.TotalFees,
		RiskRewardRatio:    agg.RiskRewardRatio,
		EntryPrices:        ladder,
		Variant:            variant,
		TradeDetails:       details,
	}
}
