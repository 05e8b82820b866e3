// Package domain defines the parameter snapshot and result records shared by
// the calculation engine and its callers.
package domain

// Variant selects how the entry ladder is obtained.
type Variant string

const (
	// VariantManual uses the entry prices exactly as the user typed them.
	VariantManual Variant = "manual"
	// VariantCalculated derives entry prices from an initial price and one
	// or more drop percentages.
	VariantCalculated Variant = "calculated"
)

// Valid reports whether v is one of the two supported variants.
func (v Variant) Valid() bool {
	return v == VariantManual || v == VariantCalculated
}

// InputParameters is one immutable snapshot of the simulation form. Callers
// build a fresh value per simulate action; nothing in this module mutates it
// and no state survives between calls.
type InputParameters struct {
	Balance    float64 `json:"balance"`    // account equity, quote currency
	Leverage   float64 `json:"leverage"`   // position multiplier, 0 < x <= 100
	StopLoss   float64 `json:"stopLoss"`   // absolute price floor
	GainTarget float64 `json:"gainTarget"` // percent

	MakerFee   float64 `json:"makerFee"`   // percent per fill
	TakerFee   float64 `json:"takerFee"`   // percent per fill, carried but never charged
	FundingFee float64 `json:"fundingFee"` // percent per funding period
	Duration   float64 `json:"duration"`   // funding periods held

	Recovery bool   `json:"recovery"` // later targets absorb prior realized losses
	Symbol   string `json:"symbol"`   // display only, no computational effect

	// Manual variant.
	NumberOfTrades int       `json:"numberOfTrades,omitempty"`
	EntryPrices    []float64 `json:"entryPrices,omitempty"`

	// Calculated variant. DropPercentages is the legacy per-step list; when
	// non-empty it takes precedence over the single DropPercentage rate.
	InitialEntryPrice float64   `json:"initialEntryPrice,omitempty"`
	DropPercentage    float64   `json:"dropPercentage,omitempty"`
	DropPercentages   []float64 `json:"dropPercentages,omitempty"`
}
