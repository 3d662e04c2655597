package validator

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year, or 0 if month is not 1-12.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// CheckDate reports whether year-month-day names an existing Gregorian day.
func CheckDate(year, month, day int) bool {
	if year < 0 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// CheckTime reports whether hour:minute:second is a valid wall-clock time.
// Leap seconds and 24:00:00 are rejected.
func CheckTime(hour, minute, second int) bool {
	return hour >= 0 && hour < 24 &&
		minute >= 0 && minute < 60 &&
		second >= 0 && second < 60
}
