package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirre55/trading-simulator/internal/domain"
)

func TestCalculate_ManualVector(t *testing.T) {
	params := domain.InputParameters{
		Balance:     1000,
		Leverage:    5,
		StopLoss:    15000,
		GainTarget:  50,
		EntryPrices: []float64{20000, 18000},
	}

	result := Calculate(params, domain.VariantManual)

	assert.Equal(t, 5000.0, result.PositionSize)
	assert.Equal(t, 2, result.NumberOfTrades)
	assert.Equal(t, 2500.0, result.AmountPerTrade)
	assert.Equal(t, 500.0, result.RealAmountPerTrade)
	assert.Equal(t, 19000.0, result.AverageEntryPrice)
	assert.InDelta(t, 1041.67, result.RiskTotal, 0.01)
	assert.InDelta(t, 2520.83, result.ProfitTarget, 0.01)
	assert.InDelta(t, 2.42, result.RiskRewardRatio, 0.01)
	assert.Equal(t, domain.VariantManual, result.Variant)
	assert.Equal(t, []float64{20000, 18000}, result.EntryPrices)
	require.Len(t, result.TradeDetails, 2)
}

func TestCalculate_CalculatedVector(t *testing.T) {
	params := domain.InputParameters{
		Balance:           1000,
		Leverage:          5,
		StopLoss:          15000,
		GainTarget:        50,
		InitialEntryPrice: 20000,
		DropPercentages:   []float64{10, 20},
	}

	result := Calculate(params, domain.VariantCalculated)

	assert.Equal(t, 2, result.NumberOfTrades)
	assert.InDeltaSlice(t, []float64{18000, 14400}, result.EntryPrices, 1e-9)
	assert.InDelta(t, 16200, result.AverageEntryPrice, 1e-9)
	assert.InDelta(t, 312.5, result.RiskTotal, 0.01)
	assert.InDelta(t, 2593.75, result.ProfitTarget, 0.01)
	assert.Equal(t, domain.VariantCalculated, result.Variant)
}

func TestCalculate_EmptyManualLadder(t *testing.T) {
	params := domain.InputParameters{
		Balance:     1000,
		Leverage:    5,
		StopLoss:    100,
		EntryPrices: []float64{},
	}

	result := Calculate(params, domain.VariantManual)

	assert.Equal(t, domain.DefaultResult(domain.VariantManual), result)
	assert.NotNil(t, result.EntryPrices)
	assert.Empty(t, result.EntryPrices)
	assert.Zero(t, result.PositionSize)
	assert.Zero(t, result.NumberOfTrades)
	assert.Zero(t, result.RiskRewardRatio)
}

func TestCalculate_DegenerateCalculatedInputs(t *testing.T) {
	params := domain.InputParameters{
		Balance:  1000,
		Leverage: 5,
		StopLoss: 100,
		// No initial price, no percentages.
	}

	result := Calculate(params, domain.VariantCalculated)
	assert.Equal(t, domain.DefaultResult(domain.VariantCalculated), result)
}

func TestCalculate_Idempotent(t *testing.T) {
	params := domain.InputParameters{
		Balance:           1000,
		Leverage:          5,
		StopLoss:          15000,
		GainTarget:        50,
		MakerFee:          0.1,
		FundingFee:        0.01,
		Duration:          2,
		Recovery:          true,
		InitialEntryPrice: 20000,
		DropPercentages:   []float64{10, 20, 30},
	}

	first := Calculate(params, domain.VariantCalculated)
	second := Calculate(params, domain.VariantCalculated)
	assert.Equal(t, first, second)
}

func TestCalculate_CountsAgree(t *testing.T) {
	params := domain.InputParameters{
		Balance:           2000,
		Leverage:          10,
		StopLoss:          20,
		GainTarget:        25,
		InitialEntryPrice: 100,
		DropPercentage:    50,
	}

	result := Calculate(params, domain.VariantCalculated)

	assert.Equal(t, result.NumberOfTrades, len(result.EntryPrices))
	assert.Equal(t, result.NumberOfTrades, len(result.TradeDetails))
}

func TestCalculate_FiniteOutputs(t *testing.T) {
	params := domain.InputParameters{
		Balance:     1500,
		Leverage:    25,
		StopLoss:    10,
		GainTarget:  40,
		MakerFee:    0.05,
		FundingFee:  0.01,
		Duration:    8,
		Recovery:    true,
		EntryPrices: []float64{90, 70, 50, 30},
	}

	result := Calculate(params, domain.VariantManual)

	for _, v := range []float64{
		result.PositionSize,
		result.AmountPerTrade,
		result.RealAmountPerTrade,
		result.AverageEntryPrice,
		result.RiskTotal,
		result.ProfitTarget,
		result.TotalFees,
		result.RiskRewardRatio,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	for _, d := range result.TradeDetails {
		assert.False(t, math.IsNaN(d.TargetPrice) || math.IsInf(d.TargetPrice, 0))
		assert.False(t, math.IsNaN(d.RiskRewardRatio) || math.IsInf(d.RiskRewardRatio, 0))
	}
}

func TestCalculate_RecoveryRampInDetails(t *testing.T) {
	params := domain.InputParameters{
		Balance:     1000,
		Leverage:    10,
		StopLoss:    10,
		GainTarget:  100,
		Recovery:    true,
		EntryPrices: []float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 15},
	}

	result := Calculate(params, domain.VariantManual)
	require.Len(t, result.TradeDetails, 10)

	// amountPerTrade = 1000, realAmountPerTrade = 100: 1000, 1100, 1200, ...
	for i, d := range result.TradeDetails {
		assert.InDeltaf(t, 1000+100*float64(i), d.Profit, 1e-9, "trade %d", i+1)
	}
}
