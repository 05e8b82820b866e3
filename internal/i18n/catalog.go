// Package i18n resolves violation tags to display messages. The tag is the
// machine contract; resolution exists only for rendering and never feeds back
// into the engine.
package i18n

import (
	"golang.org/x/text/language"
)

// FallbackLocale is used when negotiation fails, matching the original
// interface's French default.
const FallbackLocale = "fr"

// Supported locales in priority order; the first entry is the fallback.
var supported = []language.Tag{
	language.French,
	language.English,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[string]map[string]string{
	"en": {
		"balanceTooLow":        "Balance must be greater than 0",
		"leverageOutOfRange":   "Leverage must be between 1 and 100",
		"stopLossTooLow":       "Stop-loss must be greater than 0",
		"gainTargetNegative":   "Gain target cannot be negative",
		"feeNegative":          "Fees cannot be negative",
		"durationNegative":     "Duration cannot be negative",
		"insufficientPosition": "Total position must be at least 100 USDT",
		"tradesTooLow":         "Number of trades must be at least 1",
		"insufficientPerTrade": "Each trade must be at least 100 USDT",
		"entryPriceTooLow":     "Entry price must be above the stop-loss",
		"entryPriceNegative":   "Entry price must be greater than 0",
		"initialPriceTooLow":   "Initial price must be above the stop-loss",
		"initialPriceNegative": "Initial price must be greater than 0",
		"tooManyPercentages":   "At most 99 drop percentages are allowed",
		"percentageOutOfRange": "Drop percentage must be strictly between 0 and 100",
	},
	"fr": {
		"balanceTooLow":        "La balance doit être supérieure à 0",
		"leverageOutOfRange":   "Le levier doit être compris entre 1 et 100",
		"stopLossTooLow":       "Le stop-loss doit être supérieur à 0",
		"gainTargetNegative":   "Le gain cible ne peut pas être négatif",
		"feeNegative":          "Les frais ne peuvent pas être négatifs",
		"durationNegative":     "La durée ne peut pas être négative",
		"insufficientPosition": "La position totale doit être d'au moins 100 USDT",
		"tradesTooLow":         "Le nombre de trades doit être d'au moins 1",
		"insufficientPerTrade": "Chaque trade doit être d'au moins 100 USDT",
		"entryPriceTooLow":     "Le prix d'entrée doit être au-dessus du stop-loss",
		"entryPriceNegative":   "Le prix d'entrée doit être supérieur à 0",
		"initialPriceTooLow":   "Le prix initial doit être au-dessus du stop-loss",
		"initialPriceNegative": "Le prix initial doit être supérieur à 0",
		"tooManyPercentages":   "Au maximum 99 pourcentages de baisse sont autorisés",
		"percentageOutOfRange": "Le pourcentage de baisse doit être strictement entre 0 et 100",
	},
}

// Match negotiates the best supported locale from Accept-Language style
// preference strings.
func Match(preferred ...string) string {
	tag, _ := language.MatchStrings(matcher, preferred...)
	base, _ := tag.Base()
	if _, ok := catalogs[base.String()]; !ok {
		return FallbackLocale
	}
	return base.String()
}

// Resolve returns the message for a violation tag in the given locale. An
// unknown locale falls back to French; an unknown tag falls back to the tag
// itself so a new violation degrades visibly rather than silently.
func Resolve(locale, tag string) string {
	catalog, ok := catalogs[locale]
	if !ok {
		catalog = catalogs[FallbackLocale]
	}
	if msg, ok := catalog[tag]; ok {
		return msg
	}
	return tag
}

// ResolveAll resolves every tag of an error map in the given locale.
func ResolveAll(locale string, errs map[string]string) map[string]string {
	resolved := make(map[string]string, len(errs))
	for key, tag := range errs {
		resolved[key] = Resolve(locale, tag)
	}
	return resolved
}
