package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func slotWithPrices(name, perDay, perView string) Slot {
	return Slot{
		Name:         name,
		PricePerDay:  decimal.RequireFromString(perDay),
		PricePerView: decimal.RequireFromString(perView),
	}
}

func TestEstimateCostPeriod(t *testing.T) {
	// 2025-02-01 .. 2025-02-05 is five inclusive days
	slots := []Slot{slotWithPrices("banner", "50000.00", "50.0000")}
	period := NewPeriod(day("2025-02-01"), day("2025-02-05"))

	got := EstimateCost(slots, PaymentPeriod, period, nil)

	require.True(t, got.Base.Equal(decimal.RequireFromString("250000.00")), "base = %s", got.Base)
	require.True(t, got.Tax.Equal(decimal.RequireFromString("27500.00")), "tax = %s", got.Tax)
	require.True(t, got.Total.Equal(decimal.RequireFromString("277500.00")), "total = %s", got.Total)
}

func TestEstimateCostView(t *testing.T) {
	slots := []Slot{slotWithPrices("banner", "50000.00", "50.0000")}
	period := NewPeriod(day("2025-02-01"), day("2025-02-05"))
	views := int64(1000)

	got := EstimateCost(slots, PaymentView, period, &views)

	require.True(t, got.Base.Equal(decimal.RequireFromString("50000.00")), "base = %s", got.Base)
	require.True(t, got.Tax.Equal(decimal.RequireFromString("5500.00")), "tax = %s", got.Tax)
	require.True(t, got.Total.Equal(decimal.RequireFromString("55500.00")), "total = %s", got.Total)
}

func TestEstimateCostMultiSlot(t *testing.T) {
	// (50000 + 35000) * 3 days = 255000
	slots := []Slot{
		slotWithPrices("banner top", "50000.00", "50.0000"),
		slotWithPrices("banner bottom", "35000.00", "35.0000"),
	}
	period := NewPeriod(day("2025-03-01"), day("2025-03-03"))

	got := EstimateCost(slots, PaymentPeriod, period, nil)

	require.True(t, got.Base.Equal(decimal.RequireFromString("255000.00")), "base = %s", got.Base)
}

func TestEstimateCostViewWithoutTargetViews(t *testing.T) {
	// absent targetViews defaults to zero views, a zero cost is allowed
	slots := []Slot{slotWithPrices("banner", "50000.00", "50.0000")}
	period := NewPeriod(day("2025-02-01"), day("2025-02-05"))

	got := EstimateCost(slots, PaymentView, period, nil)

	require.True(t, got.Base.IsZero())
	require.True(t, got.Tax.IsZero())
	require.True(t, got.Total.IsZero())
}

func TestEstimateCostOneDayBooking(t *testing.T) {
	slots := []Slot{slotWithPrices("banner", "40000.00", "40.0000")}
	period := NewPeriod(day("2025-02-01"), day("2025-02-01"))

	got := EstimateCost(slots, PaymentPeriod, period, nil)

	require.True(t, got.Base.Equal(decimal.RequireFromString("40000.00")), "base = %s", got.Base)
}

func TestEstimateCostFractionalViewPrice(t *testing.T) {
	// four fractional digits on pricePerView must not drift
	slots := []Slot{slotWithPrices("banner", "0.00", "12.3456")}
	period := NewPeriod(day("2025-02-01"), day("2025-02-01"))
	views := int64(10)

	got := EstimateCost(slots, PaymentView, period, &views)

	require.True(t, got.Base.Equal(decimal.RequireFromString("123.46")), "base = %s", got.Base)
	require.True(t, got.Tax.Equal(decimal.RequireFromString("13.58")), "tax = %s", got.Tax)
	require.True(t, got.Total.Equal(decimal.RequireFromString("137.04")), "total = %s", got.Total)
}

func TestEstimateCostDeterministic(t *testing.T) {
	slots := []Slot{
		slotWithPrices("a", "75000.00", "75.0000"),
		slotWithPrices("b", "55000.00", "55.0000"),
	}
	period := NewPeriod(day("2025-06-10"), day("2025-06-20"))
	views := int64(4321)

	for _, pt := range []PaymentType{PaymentPeriod, PaymentView} {
		first := EstimateCost(slots, pt, period, &views)
		for i := 0; i < 10; i++ {
			again := EstimateCost(slots, pt, period, &views)
			require.True(t, first.Base.Equal(again.Base))
			require.True(t, first.Tax.Equal(again.Tax))
			require.True(t, first.Total.Equal(again.Total))
		}
		require.True(t, first.Total.Equal(first.Base.Add(first.Tax)))
	}
}
