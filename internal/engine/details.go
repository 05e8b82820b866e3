package engine

import (
	"github.com/nirre55/trading-simulator/internal/domain"
)

// DetailInputs carries the scalars shared by every rung of the per-trade
// breakdown.
type DetailInputs struct {
	Leverage           float64
	AmountPerTrade     float64
	RealAmountPerTrade float64
	GainTarget         float64
	MakerFee           float64
	FundingFee         float64
	Duration           float64
	Recovery           bool
}

// ComputeTradeDetails produces one breakdown row per ladder rung. Pure
// function; degenerate scalars (e.g. zero leverage) are the validator's job
// to exclude before this stage runs.
func ComputeTradeDetails(ladder []float64, in DetailInputs) []domain.TradeDetail {
	details := make([]domain.TradeDetail, len(ladder))
	for i, entry := range ladder {
		liquidation := entry * (1 - 1/in.Leverage)

		// The capital allocation per rung is fixed, so the assumed realized
		// loss is too; it does not scale with the stop distance.
		loss := in.RealAmountPerTrade

		fees := perTradeFees(in.AmountPerTrade, in.MakerFee, in.FundingFee, in.Duration)

		profit := in.AmountPerTrade * (in.GainTarget / 100)
		if in.Recovery && i > 0 {
			// Each later rung also recoups the assumed realized loss of
			// every rung before it.
			profit += in.RealAmountPerTrade * float64(i)
		}

		target := targetExitPrice(entry, profit, in.AmountPerTrade)

		adjustedGain := 0.0
		if entry != 0 {
			adjustedGain = (target - entry) / entry * 100
		}

		details[i] = domain.TradeDetail{
			TradeNumber:        i + 1,
			EntryPrice:         entry,
			LiquidationPrice:   liquidation,
			TargetPrice:        target,
			Profit:             profit,
			Loss:               loss,
			Fees:               fees,
			RiskRewardRatio:    profit / loss,
			AdjustedGainTarget: adjustedGain,
		}
	}
	return details
}

func perTradeFees(amountPerTrade, makerFee, fundingFee, duration float64) float64 {
	return amountPerTrade*(makerFee/100)*2 + amountPerTrade*(fundingFee/100)*duration
}

// targetExitPrice converts a dollar profit back into the exit price that
// yields it for the given notional.
func targetExitPrice(entry, profit, amountPerTrade float64) float64 {
	if amountPerTrade == 0 {
		return entry
	}
	return entry + profit*entry/amountPerTrade
}
