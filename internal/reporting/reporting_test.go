package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirre55/trading-simulator/internal/domain"
)

func sampleResult() domain.CalculationResult {
	return domain.CalculationResult{
		PositionSize:       5000,
		NumberOfTrades:     2,
		AmountPerTrade:     2500,
		RealAmountPerTrade: 500,
		AverageEntryPrice:  19000,
		RiskTotal:          1041.67,
		ProfitTarget:       2520.83,
		TotalFees:          11.5,
		RiskRewardRatio:    2.42,
		EntryPrices:        []float64{20000, 18000},
		Variant:            domain.VariantManual,
		TradeDetails: []domain.TradeDetail{
			{TradeNumber: 1, EntryPrice: 20000, LiquidationPrice: 16000, TargetPrice: 30000, Profit: 1250, Loss: 500, Fees: 5.75, RiskRewardRatio: 2.5, AdjustedGainTarget: 50},
			{TradeNumber: 2, EntryPrice: 18000, LiquidationPrice: 14400, TargetPrice: 27000, Profit: 1250, Loss: 500, Fees: 5.75, RiskRewardRatio: 2.5, AdjustedGainTarget: 50},
		},
	}
}

func TestRenderMarkdown(t *testing.T) {
	result := sampleResult()
	md := RenderMarkdown(&result)

	assert.Contains(t, md, "# Simulation Report")
	assert.Contains(t, md, "Variant: manual | Trades: 2")
	assert.Contains(t, md, "| Position Size | 5000.00 |")
	assert.Contains(t, md, "| Risk/Reward Ratio | 2.42 |")
	assert.Contains(t, md, "## Trade Details")
	assert.Contains(t, md, "| 1 | 20000.0000 |")
	assert.Contains(t, md, "| 2 | 18000.0000 |")
}

func TestRenderMarkdown_EmptyResult(t *testing.T) {
	result := domain.DefaultResult(domain.VariantCalculated)
	md := RenderMarkdown(&result)

	assert.Contains(t, md, "No valid entry ladder.")
	assert.NotContains(t, md, "## Trade Details")
}

func TestRenderCSV(t *testing.T) {
	csv := RenderCSV(sampleResult().TradeDetails)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t,
		"trade_number,entry_price,liquidation_price,target_price,profit,loss,fees,risk_reward_ratio,adjusted_gain_target",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,20000.000000,16000.000000,"))
	assert.True(t, strings.HasPrefix(lines[2], "2,18000.000000,14400.000000,"))
}

func TestRenderCSV_Empty(t *testing.T) {
	csv := RenderCSV(nil)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 1, "header only")
}
