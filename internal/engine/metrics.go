package engine

import (
	"github.com/samber/lo"

	"github.com/nirre55/trading-simulator/internal/domain"
)

// Aggregate holds the position-level metrics computed over one ladder.
type Aggregate struct {
	PositionSize      float64
	AmountPerTrade    float64
	AverageEntryPrice float64
	RiskTotal         float64
	ProfitTarget      float64
	TotalFees         float64
	RiskRewardRatio   float64
}

// ComputeAggregate computes position-level metrics over a non-empty ladder.
// Callers short-circuit the empty case to domain.DefaultResult first; this
// function never sees a zero trade count.
func ComputeAggregate(ladder []float64, p domain.InputParameters) Aggregate {
	n := float64(len(ladder))
	positionSize := p.Balance * p.Leverage
	amountPerTrade := positionSize / n
	averageEntry := lo.Sum(ladder) / n

	// Notional loss if every rung individually hit the stop-loss. A rung
	// below the stop-loss contributes a negative term; the raw signed sum is
	// the contract, not a clamped one.
	riskTotal := 0.0
	for _, price := range ladder {
		riskTotal += (price - p.StopLoss) * (amountPerTrade / price)
	}

	// One shared exit price derived from the mean entry. Per-trade targets
	// in details.go use their own formula.
	targetPrice := averageEntry * (1 + p.GainTarget/100)
	profitTarget := 0.0
	for _, price := range ladder {
		profitTarget += (targetPrice - price) * (amountPerTrade / price)
	}

	// Maker legs on open and close, plus funding over the holding duration.
	// Taker fees are never charged: fills are assumed to rest as maker
	// orders.
	makerCost := n * amountPerTrade * (p.MakerFee / 100) * 2
	fundingCost := n * amountPerTrade * (p.FundingFee / 100) * p.Duration

	ratio := 0.0
	if riskTotal > 0 {
		ratio = profitTarget / riskTotal
	}

	return Aggregate{
		PositionSize:      positionSize,
		AmountPerTrade:    amountPerTrade,
		AverageEntryPrice: averageEntry,
		RiskTotal:         riskTotal,
		ProfitTarget:      profitTarget,
		TotalFees:         makerCost + fundingCost,
		RiskRewardRatio:   ratio,
	}
}
