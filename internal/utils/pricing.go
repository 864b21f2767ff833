package utils

const (
	daysPerWeek = 7

	// weeklyDiscount is applied to every day that belongs to a full week
	weeklyDiscount = 0.9
)

// Daily rates per car type
const (
	DailyRateA = 100
	DailyRateB = 150
	DailyRateC = 180
	DailyRateD = 240
)

// RentalPriceBreakdown provides detailed price breakdown
type RentalPriceBreakdown struct {
	Weeks     int
	Days      int
	DailyRate int
	WeeksCost int
	DaysCost  int
	TotalCost int
}

// DailyRate returns the daily rate for a car type letter.
// Anything other than A, B or C is charged at the D rate.
func DailyRate(carType byte) int {
	switch carType {
	case 'A':
		return DailyRateA
	case 'B':
		return DailyRateB
	case 'C':
		return DailyRateC
	default:
		return DailyRateD
	}
}

// CalculateRentalPrice returns the price of renting a car of the given type
// for the given number of days. Full weeks are discounted and the result is
// truncated to a whole amount.
func CalculateRentalPrice(carType byte, days int) int {
	return CalculateRentalPriceWithBreakdown(carType, days).TotalCost
}

// CalculateRentalPriceWithBreakdown splits the rental period into full weeks
// and remaining days and prices each part
func CalculateRentalPriceWithBreakdown(carType byte, days int) RentalPriceBreakdown {
	if days < 0 {
		days = 0
	}
	rate := DailyRate(carType)
	weeks := days / daysPerWeek
	rest := days % daysPerWeek

	// The explicit conversions keep the compiler from fusing the multiply
	// and add, so totals truncate the same way on every architecture.
	weekDays := float64(weeklyDiscount * float64(weeks) * daysPerWeek)
	chargedDays := weekDays + float64(rest)
	total := int(float64(float64(rate) * chargedDays))
	weeksCost := int(float64(float64(rate) * weekDays))

	return RentalPriceBreakdown{
		Weeks:     weeks,
		Days:      rest,
		DailyRate: rate,
		WeeksCost: weeksCost,
		DaysCost:  rate * rest,
		TotalCost: total,
	}
}
