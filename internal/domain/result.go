package domain

// TradeDetail is the breakdown of one ladder rung.
type TradeDetail struct {
	TradeNumber        int     `json:"tradeNumber"` // 1-based
	EntryPrice         float64 `json:"entryPrice"`
	LiquidationPrice   float64 `json:"liquidationPrice"`
	TargetPrice        float64 `json:"targetPrice"`
	Profit             float64 `json:"profit"`
	Loss               float64 `json:"loss"`
	Fees               float64 `json:"fees"`
	RiskRewardRatio    float64 `json:"riskRewardRatio"`
	AdjustedGainTarget float64 `json:"adjustedGainTarget"` // percent
}

// CalculationResult is the output record of one simulate action. It is never
// mutated after creation.
type CalculationResult struct {
	PositionSize       float64       `json:"positionSize"`
	NumberOfTrades     int           `json:"numberOfTrades"`
	AmountPerTrade     float64       `json:"amountPerTrade"`     // leveraged capital per trade
	RealAmountPerTrade float64       `json:"realAmountPerTrade"` // unleveraged capital per trade
	AverageEntryPrice  float64       `json:"averageEntryPrice"`
	RiskTotal          float64       `json:"riskTotal"`
	ProfitTarget       float64       `json:"profitTarget"`
	TotalFees          float64       `json:"totalFees"`
	RiskRewardRatio    float64       `json:"riskRewardRatio"`
	EntryPrices        []float64     `json:"entryPrices"`
	Variant            Variant       `json:"variant"`
	TradeDetails       []TradeDetail `json:"tradeDetails"`
}

// DefaultResult is the all-zero record returned when no valid ladder exists.
func DefaultResult(variant Variant) CalculationResult {
	return CalculationResult{
		EntryPrices:  []float64{},
		TradeDetails: []TradeDetail{},
		Variant:      variant,
	}
}
