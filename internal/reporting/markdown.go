// Package reporting renders calculation results for the CLI and exports.
package reporting

import (
	"fmt"
	"strings"

	"github.com/nirre55/trading-simulator/internal/domain"
)

// RenderMarkdown renders one calculation result as a Markdown report.
func RenderMarkdown(r *domain.CalculationResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Simulation Report\n\n")
	sb.WriteString(fmt.Sprintf("Variant: %s | Trades: %d\n\n", r.Variant, r.NumberOfTrades))

	// Position summary
	sb.WriteString("## Position\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Position Size | %.2f |\n", r.PositionSize))
	sb.WriteString(fmt.Sprintf("| Amount Per Trade | %.2f |\n", r.AmountPerTrade))
	sb.WriteString(fmt.Sprintf("| Real Amount Per Trade | %.2f |\n", r.RealAmountPerTrade))
	sb.WriteString(fmt.Sprintf("| Average Entry Price | %.2f |\n", r.AverageEntryPrice))
	sb.WriteString(fmt.Sprintf("| Risk Total | %.2f |\n", r.RiskTotal))
	sb.WriteString(fmt.Sprintf("| Profit Target | %.2f |\n", r.ProfitTarget))
	sb.WriteString(fmt.Sprintf("| Total Fees | %.2f |\n", r.TotalFees))
	sb.WriteString(fmt.Sprintf("| Risk/Reward Ratio | %.2f |\n", r.RiskRewardRatio))
	sb.WriteString("\n")

	// Entry ladder
	sb.WriteString("## Entry Prices\n\n")
	if len(r.EntryPrices) == 0 {
		sb.WriteString("No valid entry ladder.\n\n")
	} else {
		for i, price := range r.EntryPrices {
			sb.WriteString(fmt.Sprintf("%d. %.4f\n", i+1, price))
		}
		sb.WriteString("\n")
	}

	// Per-trade breakdown
	if len(r.TradeDetails) > 0 {
		sb.WriteString("## Trade Details\n\n")
		sb.WriteString("| # | Entry | Liquidation | Target | Profit | Loss | Fees | R/R | Adj. Gain % |\n")
		sb.WriteString("|---|-------|-------------|--------|--------|------|------|-----|-------------|\n")
		for _, d := range r.TradeDetails {
			sb.WriteString(fmt.Sprintf("| %d | %.4f | %.4f | %.4f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
				d.TradeNumber,
				d.EntryPrice,
				d.LiquidationPrice,
				d.TargetPrice,
				d.Profit,
				d.Loss,
				d.Fees,
				d.RiskRewardRatio,
				d.AdjustedGainTarget,
			))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
