package domain

import "github.com/shopspring/decimal"

// TaxRatePercent is the VAT-style tax applied on top of the base cost.
const TaxRatePercent = 11

var taxRate = decimal.New(TaxRatePercent, -2)

// CostBreakdown is the result of a cost estimate. All values carry two
// fractional digits.
type CostBreakdown struct {
	Base  decimal.Decimal `json:"baseCost"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

// EstimateCost computes the billable cost of occupying the given slots
// over the period. It is a pure function: deterministic, no side
// effects.
//
// For period billing the base cost is the sum over slots of
// pricePerDay multiplied by the inclusive day count. For view billing
// it is the sum of pricePerView multiplied by targetViews; a nil
// targetViews counts as zero, which yields a zero base cost and is
// allowed. Tax is a fixed 11% of the base.
func EstimateCost(slots []Slot, paymentType PaymentType, period Period, targetViews *int64) CostBreakdown {
	base := decimal.Zero

	switch paymentType {
	case PaymentPeriod:
		days := decimal.NewFromInt(period.Days())
		for _, s := range slots {
			base = base.Add(s.PricePerDay.Mul(days))
		}
	case PaymentView:
		var views int64
		if targetViews != nil {
			views = *targetViews
		}
		v := decimal.NewFromInt(views)
		for _, s := range slots {
			base = base.Add(s.PricePerView.Mul(v))
		}
	}

	base = base.Round(2)
	tax := base.Mul(taxRate).Round(2)
	return CostBreakdown{
		Base:  base,
		Tax:   tax,
		Total: base.Add(tax),
	}
}
