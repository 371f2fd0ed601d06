package services

import "signhero/internal/core/domain/model/kernel"

// Pricing constants for the letter sign package.
const (
	// BasePackagePrice is the flat price of the standard rental.
	BasePackagePrice = 95

	// ExtraDayPrice is charged per extra rental day, before or after.
	ExtraDayPrice = 10

	// MaxExtraDays caps the extra days a customer can select per side.
	MaxExtraDays = 3
)

// Quote prices a rental: base package plus a flat per-day charge for extra
// days before and after the event. Inputs are clamped to [0, MaxExtraDays]
// so out-of-range values from the client never inflate or corrupt the total.
func Quote(extraDaysBefore, extraDaysAfter int) kernel.Money {
	before := clampExtraDays(extraDaysBefore)
	after := clampExtraDays(extraDaysAfter)

	total, _ := kernel.NewMoneyFromInt(int64(BasePackagePrice + before*ExtraDayPrice + after*ExtraDayPrice))
	return total
}

func clampExtraDays(days int) int {
	if days < 0 {
		return 0
	}
	if days > MaxExtraDays {
		return MaxExtraDays
	}
	return days
}
