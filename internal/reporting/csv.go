package reporting

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/nirre55/trading-simulator/internal/domain"
)

// RenderCSV renders the per-trade breakdown as CSV string.
func RenderCSV(details []domain.TradeDetail) string {
	var sb strings.Builder

	// Header
	sb.WriteString("trade_number,entry_price,liquidation_price,target_price,")
	sb.WriteString("profit,loss,fees,risk_reward_ratio,adjusted_gain_target\n")

	// Rows
	rows := lo.Map(details, func(d domain.TradeDetail, _ int) string {
		return fmt.Sprintf("%d,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			d.TradeNumber,
			d.EntryPrice,
			d.LiquidationPrice,
			d.TargetPrice,
			d.Profit,
			d.Loss,
			d.Fees,
			d.RiskRewardRatio,
			d.AdjustedGainTarget,
		)
	})
	sb.WriteString(strings.Join(rows, ""))

	return sb.String()
}
