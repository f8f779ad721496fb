package models

import "github.com/shopspring/decimal"

// RewardTier is the cashback band unlocked by the gifted value of a list.
type RewardTier int

const (
	TierNone RewardTier = iota
	Tier5
	Tier10
)

// Percent is the cashback percentage of the tier.
func (t RewardTier) Percent() int64 {
	switch t {
	case Tier5:
		return 5
	case Tier10:
		return 10
	default:
		return 0
	}
}

func (t RewardTier) String() string {
	switch t {
	case Tier5:
		return "tier_5"
	case Tier10:
		return "tier_10"
	default:
		return "none"
	}
}

func (t RewardTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ProgressMessage is one line of the reward progress widget.
type ProgressMessage struct {
	Label    string `json:"label"`
	Disabled bool   `json:"is_disabled"`
	Hidden   bool   `json:"is_hidden"`
}

// Reward is the cashback state of a list.
type Reward struct {
	Value    decimal.Decimal   `json:"value"`
	Tier     RewardTier        `json:"tier"`
	Percent  int64             `json:"percent"`
	Discount decimal.Decimal   `json:"discount"`
	Messages []ProgressMessage `json:"messages"`
}
