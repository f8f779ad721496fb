package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"babylist/internal/babylist/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func matched(price, regular string, vip *string) models.Matched {
	entry := models.CatalogEntry{SKU: "A", Price: dec(price), RegularPrice: dec(regular)}
	if vip != nil {
		entry.VipPrice = decimal.NewNullDecimal(dec(*vip))
	}
	return models.Matched{Entry: entry}
}

func ptr(s string) *string { return &s }

func openLine() models.RawLine {
	return models.RawLine{SKU: "A", LineID: 1, Quantity: 2, AvailableQty: 2, UnitPrice: dec("40")}
}

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		line   func() models.RawLine
		source models.LineSource
		pc     Context
		want   string
		rule   Rule
	}{
		{
			name:   "mandatory keeps registry price",
			line:   func() models.RawLine { l := openLine(); l.Mandatory = true; return l },
			source: matched("30", "35", ptr("25")),
			pc:     Context{ViewerIsVip: true, OverridingCoupon: true},
			want:   "40",
			rule:   RuleRegistry,
		},
		{
			name:   "gifted keeps registry price",
			line:   func() models.RawLine { l := openLine(); l.AvailableQty = 0; return l },
			source: matched("30", "35", ptr("25")),
			pc:     Context{ViewerIsVip: true},
			want:   "40",
			rule:   RuleRegistry,
		},
		{
			name:   "unmatched keeps registry price",
			line:   openLine,
			source: models.Unmatched{},
			pc:     Context{ViewerIsVip: true, OverridingCoupon: true},
			want:   "40",
			rule:   RuleUnmatched,
		},
		{
			name:   "coupon uses regular price over VIP",
			line:   openLine,
			source: matched("30", "35", ptr("25")),
			pc:     Context{ViewerIsVip: true, OverridingCoupon: true},
			want:   "35",
			rule:   RuleCouponRegular,
		},
		{
			name:   "VIP viewer with VIP price",
			line:   openLine,
			source: matched("30", "35", ptr("25")),
			pc:     Context{ViewerIsVip: true},
			want:   "25",
			rule:   RuleVip,
		},
		{
			name:   "VIP viewer without VIP price",
			line:   openLine,
			source: matched("30", "35", nil),
			pc:     Context{ViewerIsVip: true},
			want:   "30",
			rule:   RuleCatalog,
		},
		{
			name:   "non VIP viewer",
			line:   openLine,
			source: matched("30", "35", ptr("25")),
			pc:     Context{},
			want:   "30",
			rule:   RuleCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := Resolve(tt.line(), tt.source, tt.pc)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestResolve_VariantVipPrice(t *testing.T) {
	entry := models.CatalogEntry{
		Price:           dec("50"),
		IsVariable:      true,
		VipPrice:        decimal.NewNullDecimal(dec("45")),
		VariantVipPrice: decimal.NewNullDecimal(dec("42")),
	}
	got, rule := Resolve(openLine(), models.Matched{Entry: entry}, Context{ViewerIsVip: true})
	assert.True(t, dec("42").Equal(got))
	assert.Equal(t, RuleVip, rule)
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(openLine(), matched("30", "35", nil), Context{})
	assert.True(t, dec("60").Equal(got))
}

func TestResolve_MandatoryIgnoresCatalogPrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(0, 1_000_000).Draw(t, "cents")
		vip := rapid.Bool().Draw(t, "vip")
		coupon := rapid.Bool().Draw(t, "coupon")

		line := openLine()
		line.Mandatory = true
		entry := models.CatalogEntry{
			Price:        decimal.New(cents, -2),
			RegularPrice: decimal.New(cents+100, -2),
			VipPrice:     decimal.NewNullDecimal(decimal.New(cents/2, -2)),
		}

		got, _ := Resolve(line, models.Matched{Entry: entry}, Context{ViewerIsVip: vip, OverridingCoupon: coupon})
		if !got.Equal(line.UnitPrice) {
			t.Fatalf("mandatory line priced at %s, want %s", got, line.UnitPrice)
		}
	})
}

func TestResolve_VipRequiresAllConditions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vip := rapid.Bool().Draw(t, "viewer_vip")
		hasVipPrice := rapid.Bool().Draw(t, "has_vip_price")
		coupon := rapid.Bool().Draw(t, "coupon")

		var vipPrice *string
		if hasVipPrice {
			vipPrice = ptr("25")
		}
		got, rule := Resolve(openLine(), matched("30", "35", vipPrice), Context{ViewerIsVip: vip, OverridingCoupon: coupon})

		switch {
		case coupon:
			if rule != RuleCouponRegular || !got.Equal(dec("35")) {
				t.Fatalf("coupon: got %s via %s", got, rule)
			}
		case vip && hasVipPrice:
			if rule != RuleVip || !got.Equal(dec("25")) {
				t.Fatalf("vip: got %s via %s", got, rule)
			}
		default:
			if rule != RuleCatalog || !got.Equal(dec("30")) {
				t.Fatalf("catalog: got %s via %s", got, rule)
			}
		}
	})
}
