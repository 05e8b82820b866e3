package engine

import (
	"strconv"

	"github.com/nirre55/trading-simulator/internal/domain"
)

// ErrorMap maps a field key (e.g. "balance", "entryPrice0") to a violation
// tag. An absent key means the field is valid. Tags are machine identifiers;
// message resolution lives in internal/i18n.
type ErrorMap map[string]string

// Violation tags reported by the validators.
const (
	ViolationBalanceTooLow        = "balanceTooLow"
	ViolationLeverageOutOfRange   = "leverageOutOfRange"
	ViolationStopLossTooLow       = "stopLossTooLow"
	ViolationGainTargetNegative   = "gainTargetNegative"
	ViolationFeeNegative          = "feeNegative"
	ViolationDurationNegative     = "durationNegative"
	ViolationInsufficientPosition = "insufficientPosition"
	ViolationTradesTooLow         = "tradesTooLow"
	ViolationInsufficientPerTrade = "insufficientPerTrade"
	ViolationEntryPriceTooLow     = "entryPriceTooLow"
	ViolationEntryPriceNegative   = "entryPriceNegative"
	ViolationInitialPriceTooLow   = "initialPriceTooLow"
	ViolationInitialPriceNegative = "initialPriceNegative"
	ViolationTooManyPercentages   = "tooManyPercentages"
	ViolationPercentageOutOfRange = "percentageOutOfRange"
)

// minPositionNotional is the smallest total and per-trade position accepted,
// in quote currency.
const minPositionNotional = 100

// ValidateCommonParams checks the fields shared by both variants. Check order
// is part of the contract: a later rule overwrites an earlier tag on the same
// key, so an insufficient total position is reported over balanceTooLow when
// both apply.
func ValidateCommonParams(p domain.InputParameters) ErrorMap {
	errs := ErrorMap{}
	if p.Balance <= 0 {
		errs["balance"] = ViolationBalanceTooLow
	}
	if p.Leverage <= 0 || p.Leverage > 100 {
		errs["leverage"] = ViolationLeverageOutOfRange
	}
	if p.StopLoss <= 0 {
		errs["stopLoss"] = ViolationStopLossTooLow
	}
	if p.GainTarget < 0 {
		errs["gainTarget"] = ViolationGainTargetNegative
	}
	if p.MakerFee < 0 {
		errs["makerFee"] = ViolationFeeNegative
	}
	if p.TakerFee < 0 {
		errs["takerFee"] = ViolationFeeNegative
	}
	if p.FundingFee < 0 {
		errs["fundingFee"] = ViolationFeeNegative
	}
	if p.Duration < 0 {
		errs["duration"] = ViolationDurationNegative
	}
	if p.Balance*p.Leverage < minPositionNotional {
		errs["balance"] = ViolationInsufficientPosition
	}
	return errs
}

// ValidateManual checks the manual-variant fields. Each entry price is
// checked against the stop-loss first and against zero second, so a
// non-positive price always ends up tagged entryPriceNegative.
func ValidateManual(p domain.InputParameters) ErrorMap {
	errs := ErrorMap{}
	if p.NumberOfTrades < 1 {
		errs["numberOfTrades"] = ViolationTradesTooLow
	}
	if (p.Balance*p.Leverage)/float64(p.NumberOfTrades) < minPositionNotional {
		errs["numberOfTrades"] = ViolationInsufficientPerTrade
	}
	for i, price := range p.EntryPrices {
		key := "entryPrice" + strconv.Itoa(i)
		if price <= p.StopLoss {
			errs[key] = ViolationEntryPriceTooLow
		}
		if price <= 0 {
			errs[key] = ViolationEntryPriceNegative
		}
	}
	return errs
}

// ValidateCalculated checks the calculated-variant fields. Only the legacy
// percentage-list shape is validated; a degenerate single-rate shape degrades
// to the all-zero default result in the generator instead.
func ValidateCalculated(p domain.InputParameters) ErrorMap {
	errs := ErrorMap{}
	if p.InitialEntryPrice <= p.StopLoss {
		errs["initialEntryPrice"] = ViolationInitialPriceTooLow
	}
	if p.InitialEntryPrice <= 0 {
		errs["initialEntryPrice"] = ViolationInitialPriceNegative
	}
	if len(p.DropPercentages) > 99 {
		errs["dropPercentages"] = ViolationTooManyPercentages
	}
	// The +1 accounts for the legacy initial-price-inclusive ladder length.
	if len(p.DropPercentages) > 0 &&
		(p.Balance*p.Leverage)/float64(len(p.DropPercentages)+1) < minPositionNotional {
		errs["dropPercentages"] = ViolationInsufficientPerTrade
	}
	for i, percent := range p.DropPercentages {
		if percent <= 0 || percent >= 100 {
			errs["dropPercentage"+strconv.Itoa(i)] = ViolationPercentageOutOfRange
		}
	}
	return errs
}

// Validate runs the common rules plus the rules for the given variant.
// Variant tags overwrite common tags on the same key.
func Validate(p domain.InputParameters, variant domain.Variant) ErrorMap {
	errs := ValidateCommonParams(p)
	var variantErrs ErrorMap
	if variant == domain.VariantManual {
		variantErrs = ValidateManual(p)
	} else {
		variantErrs = ValidateCalculated(p)
	}
	for key, tag := range variantErrs {
		errs[key] = tag
	}
	return errs
}
