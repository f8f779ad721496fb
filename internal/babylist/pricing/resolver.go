// Package pricing resolves the effective unit price of a registry line.
//
// Rules are evaluated top-down and the first match wins:
//
//  1. mandatory or gifted line: registry price
//  2. no catalog match: registry price
//  3. overriding coupon: catalog regular price
//  4. VIP viewer and VIP price on the entry: VIP price
//  5. catalog current price
//
// Committed and gifted amounts must never pick up catalog promotions, so the
// registry rules come first.
package pricing

import (
	"github.com/shopspring/decimal"

	"babylist/internal/babylist/models"
)

// Rule names the precedence rule that produced a price.
type Rule string

const (
	RuleRegistry      Rule = "registry"
	RuleUnmatched     Rule = "unmatched"
	RuleCouponRegular Rule = "coupon_regular"
	RuleVip           Rule = "vip"
	RuleCatalog       Rule = "catalog"
)

// Context carries the request-level facts pricing depends on.
type Context struct {
	ViewerIsVip      bool
	OverridingCoupon bool
}

// Resolve returns the effective per-unit price of line and the rule that
// selected it. line must be normalized.
func Resolve(line models.RawLine, source models.LineSource, pc Context) (decimal.Decimal, Rule) {
	if line.Mandatory || line.AvailableQty == 0 {
		return line.UnitPrice, RuleRegistry
	}

	matched, ok := source.(models.Matched)
	if !ok {
		return line.UnitPrice, RuleUnmatched
	}
	entry := matched.Entry

	if pc.OverridingCoupon {
		return entry.RegularPrice, RuleCouponRegular
	}

	if pc.ViewerIsVip {
		if vip, ok := entry.VipPriceFor(); ok {
			return vip, RuleVip
		}
	}

	return entry.Price, RuleCatalog
}

// LineTotal is the effective price multiplied by the line quantity.
func LineTotal(line models.RawLine, source models.LineSource, pc Context) decimal.Decimal {
	price, _ := Resolve(line, source, pc)
	return price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}
