package reward

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babylist/internal/babylist/models"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		value string
		want  models.RewardTier
	}{
		{"0", models.TierNone},
		{"499.99", models.TierNone},
		{"500.00", models.Tier5},
		{"999.99", models.Tier5},
		{"1000.00", models.Tier10},
		{"25000", models.Tier10},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(dec(tt.value)))
		})
	}
}

func TestDiscount(t *testing.T) {
	assert.Equal(t, "40.00", Discount(dec("800"), models.Tier5.Percent()).StringFixed(2))
	assert.Equal(t, "0.00", Discount(dec("300"), models.TierNone.Percent()).StringFixed(2))
	assert.True(t, dec("50.62").Equal(Discount(dec("1012.35"), 5)))
}

func TestCalculate(t *testing.T) {
	items := models.Items{
		{LineTotal: dec("300")},
		{LineTotal: dec("500")},
	}
	got := Calculate(items)
	assert.True(t, dec("800").Equal(got.Value))
	assert.Equal(t, models.Tier5, got.Tier)
	assert.Equal(t, int64(5), got.Percent)
	assert.Equal(t, "40.00", got.Discount.StringFixed(2))
	assert.Len(t, got.Messages, 6)
}

func visible(messages []models.ProgressMessage) []int {
	var out []int
	for i, m := range messages {
		if !m.Hidden {
			out = append(out, i)
		}
	}
	return out
}

func TestMessages(t *testing.T) {
	t.Run("nothing gifted shows the intro lines", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, visible(Messages(decimal.Zero, models.TierNone)))
	})

	t.Run("below tier 5 shows remaining amounts", func(t *testing.T) {
		msgs := Messages(dec("120"), models.TierNone)
		assert.Equal(t, []int{2, 4}, visible(msgs))
		assert.Contains(t, msgs[2].Label, "€ 380.00")
		assert.Contains(t, msgs[4].Label, "€ 880.00")
		assert.True(t, msgs[2].Disabled)
	})

	t.Run("tier 5 shows achievement and remaining to tier 10", func(t *testing.T) {
		msgs := Messages(dec("800"), models.Tier5)
		assert.Equal(t, []int{3, 4}, visible(msgs))
		assert.False(t, msgs[3].Disabled)
		assert.Contains(t, msgs[3].Label, "€ 40.00")
	})

	t.Run("tier 10 hides the tier 5 achievement", func(t *testing.T) {
		msgs := Messages(dec("1200"), models.Tier10)
		require.Equal(t, []int{5}, visible(msgs))
		assert.False(t, msgs[5].Disabled)
		assert.Contains(t, msgs[5].Label, "€ 120.00")
	})
}
