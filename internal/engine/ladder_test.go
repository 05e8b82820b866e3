package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nirre55/trading-simulator/internal/domain"
)

func TestGenerateLadder_ManualVerbatim(t *testing.T) {
	params := domain.InputParameters{EntryPrices: []float64{20000, 18000, 16000}}
	ladder := GenerateLadder(params, domain.VariantManual)
	assert.Equal(t, []float64{20000, 18000, 16000}, ladder)
}

func TestGenerateLadder_ManualCopies(t *testing.T) {
	params := domain.InputParameters{EntryPrices: []float64{100, 90}}
	ladder := GenerateLadder(params, domain.VariantManual)
	ladder[0] = 1
	assert.Equal(t, 100.0, params.EntryPrices[0], "ladder must not alias the snapshot")
}

func TestGenerateLadder_ManualEmpty(t *testing.T) {
	ladder := GenerateLadder(domain.InputParameters{}, domain.VariantManual)
	assert.Empty(t, ladder)
}

func TestGenerateLadder_PercentageList(t *testing.T) {
	params := domain.InputParameters{
		InitialEntryPrice: 20000,
		DropPercentages:   []float64{10, 20},
		StopLoss:          15000,
	}
	ladder := GenerateLadder(params, domain.VariantCalculated)
	// The initial price is excluded; each drop applies to the running price.
	assert.InDeltaSlice(t, []float64{18000, 14400}, ladder, 1e-9)
}

func TestGenerateLadder_PercentageListKeepsSubStopPrices(t *testing.T) {
	params := domain.InputParameters{
		InitialEntryPrice: 20000,
		DropPercentages:   []float64{10, 50},
		StopLoss:          15000,
	}
	ladder := GenerateLadder(params, domain.VariantCalculated)
	// 9000 is below the stop-loss but the list cascade never stops early.
	assert.InDeltaSlice(t, []float64{18000, 9000}, ladder, 1e-9)
}

func TestGenerateLadder_SingleRate(t *testing.T) {
	params := domain.InputParameters{
		InitialEntryPrice: 100,
		DropPercentage:    50,
		StopLoss:          20,
	}
	ladder := GenerateLadder(params, domain.VariantCalculated)
	// Initial price included; generation stops once a rung lands at or below
	// the stop-loss, keeping that rung.
	assert.Equal(t, []float64{100, 50, 25, 12.5}, ladder)
}

func TestGenerateLadder_SingleRateInitialBelowStop(t *testing.T) {
	params := domain.InputParameters{
		InitialEntryPrice: 15,
		DropPercentage:    50,
		StopLoss:          20,
	}
	ladder := GenerateLadder(params, domain.VariantCalculated)
	assert.Equal(t, []float64{15, 7.5}, ladder)
}

func TestGenerateLadder_SingleRateCap(t *testing.T) {
	params := domain.InputParameters{
		InitialEntryPrice: 100,
		DropPercentage:    0.0001,
		StopLoss:          1,
	}
	ladder := GenerateLadder(params, domain.VariantCalculated)
	assert.Len(t, ladder, maxLadderEntries)
}

func TestGenerateLadder_ListTakesPrecedenceOverRate(t *testing.T) {
	params := domain.InputParameters{
		InitialEntryPrice: 100,
		DropPercentage:    50,
		DropPercentages:   []float64{10},
		StopLoss:          1,
	}
	ladder := GenerateLadder(params, domain.VariantCalculated)
	assert.InDeltaSlice(t, []float64{90}, ladder, 1e-9)
}

func TestGenerateLadder_Degenerate(t *testing.T) {
	cases := []struct {
		name   string
		params domain.InputParameters
	}{
		{"zero initial price", domain.InputParameters{DropPercentage: 50, StopLoss: 20}},
		{"negative initial price", domain.InputParameters{InitialEntryPrice: -5, DropPercentage: 50}},
		{"no percentages at all", domain.InputParameters{InitialEntryPrice: 100, StopLoss: 20}},
		{"zero single rate", domain.InputParameters{InitialEntryPrice: 100, DropPercentage: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, GenerateLadder(tc.params, domain.VariantCalculated))
		})
	}
}
