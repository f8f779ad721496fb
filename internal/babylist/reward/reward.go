// Package reward computes the cashback tier a list earns from its gifts.
package reward

import (
	"fmt"

	"github.com/shopspring/decimal"

	"babylist/internal/babylist/models"
)

var (
	tier5Threshold  = decimal.NewFromInt(500)
	tier10Threshold = decimal.NewFromInt(1000)
	hundred         = decimal.NewFromInt(100)
)

// TierFor resolves the tier for a cumulative gifted value:
// [500, 1000) is Tier5, 1000 and above is Tier10, anything else is TierNone.
func TierFor(value decimal.Decimal) models.RewardTier {
	switch {
	case value.GreaterThanOrEqual(tier10Threshold):
		return models.Tier10
	case value.GreaterThanOrEqual(tier5Threshold):
		return models.Tier5
	default:
		return models.TierNone
	}
}

// Discount is value times the percent, rounded to cents.
func Discount(value decimal.Decimal, percent int64) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(percent)).Div(hundred).Round(2)
}

// Calculate computes the reward for the gifted, participating items of a list.
func Calculate(items models.Items) models.Reward {
	value := items.Amount()
	tier := TierFor(value)
	return models.Reward{
		Value:    value,
		Tier:     tier,
		Percent:  tier.Percent(),
		Discount: Discount(value, tier.Percent()),
		Messages: Messages(value, tier),
	}
}

// Messages builds the progress widget lines. Only one "achieved" line is
// visible at a time: reaching Tier10 hides the Tier5 one.
func Messages(value decimal.Decimal, tier models.RewardTier) []models.ProgressMessage {
	percent := tier.Percent()
	started := !value.IsZero()

	return []models.ProgressMessage{
		{
			Label:    "Ti mancano €500 per ottenere il buono del 5% sul valore della spesa",
			Disabled: true,
			Hidden:   started,
		},
		{
			Label:    "Ti mancano €1000 per ottenere il buono del 10% sul valore della spesa",
			Disabled: true,
			Hidden:   started,
		},
		{
			Label:    fmt.Sprintf("Ti mancano € %s per ottenere il buono del 5%% sul valore della spesa", tier5Threshold.Sub(value).StringFixed(2)),
			Disabled: percent < 5,
			Hidden:   !(percent < 5 && started),
		},
		{
			Label:    fmt.Sprintf("Hai ottenuto un buono del valore di € %s (pari al 5%% del totale spesa)", Discount(value, 5).StringFixed(2)),
			Disabled: percent != 5,
			Hidden:   percent < 5 || percent == 10,
		},
		{
			Label:    fmt.Sprintf("Ti mancano € %s per ottenere il buono del 10%% sul valore della spesa", tier10Threshold.Sub(value).StringFixed(2)),
			Disabled: percent < 10,
			Hidden:   !(percent < 10 && started),
		},
		{
			Label:    fmt.Sprintf("Hai ottenuto un buono del valore di € %s (pari al 10%% del totale spesa)", Discount(value, 10).StringFixed(2)),
			Disabled: percent != 10,
			Hidden:   percent != 10,
		},
	}
}
