package utils

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// IsCalendarDate checks day and month against the Gregorian calendar.
// Year range limits are left to the caller.
func IsCalendarDate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// DayNumber maps a date onto a proleptic day count so that two dates can be
// compared and subtracted. January and February are treated as months 13 and
// 14 of the previous year.
func DayNumber(day, month, year int) int {
	if month < 3 {
		year--
		month += 12
	}
	return 365*year + year/4 - year/100 + year/400 + ((month+1)*306)/10 + (day - 62)
}
