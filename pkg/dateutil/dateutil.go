// Package dateutil provides calendar arithmetic, boundary, formatting and
// range-check helpers over time.Time.
//
// Functions that take an explicit instant are pure. Operations on the current
// instant live on Util, which reads an injectable clock.
package dateutil

import "time"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the last representable instant of the day (23:59:59.999999999)
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -WeekdayIndex(date)))
}

// EndOfWeek returns the end of the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	monday := StartOfWeek(date)
	sunday := monday.AddDate(0, 0, 6)
	return EndOfDay(sunday)
}

// StartOfMonth returns midnight of the first day of the month
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the end of the last day of the month
func EndOfMonth(date time.Time) time.Time {
	firstOfNext := StartOfMonth(date).AddDate(0, 1, 0)
	return EndOfDay(firstOfNext.AddDate(0, 0, -1))
}

// StartOfYear returns midnight of January 1st
func StartOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
}

// EndOfYear returns the end of December 31st
func EndOfYear(date time.Time) time.Time {
	return EndOfDay(time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location()))
}

// WeekdayIndex returns the ISO day-of-week index, 0 for Monday through 6 for Sunday
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// GetWeekNumber returns the ISO 8601 year and week of date. Late December
// can belong to week 1 of the next year and early January to the last week
// of the previous one.
func GetWeekNumber(date time.Time) (year, week int) {
	return date.ISOWeek()
}

// IsWeekday reports whether date falls on Monday through Friday
func IsWeekday(date time.Time) bool {
	return WeekdayIndex(date) < 5
}

// IsWeekend reports whether date falls on Saturday or Sunday
func IsWeekend(date time.Time) bool {
	return !IsWeekday(date)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsSameWeek reports whether both dates fall in one ISO week, which runs
// Monday to Sunday and may straddle a year boundary
func IsSameWeek(date1, date2 time.Time) bool {
	return StartOfWeek(date1).Equal(StartOfWeek(date2.In(date1.Location())))
}

// IsLeapYear applies the Gregorian rule
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month of year.
// The first day of the following month minus one day gives the last day, so
// December rolls into January of the next year.
func DaysInMonth(month time.Month, year int) (int, error) {
	if month < time.January || month > time.December {
		return 0, newError(KindInvalidArgument, "invalid month %d: must be between 1 and 12", int(month))
	}
	firstOfNext := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day(), nil
}

// IsValidCalendarDate reports whether year, month and day name an existing
// proleptic Gregorian date with a four digit year
func IsValidCalendarDate(year, month, day int) bool {
	if year < minYear || year > maxYear {
		return false
	}
	days, err := DaysInMonth(time.Month(month), year)
	if err != nil {
		return false
	}
	return day >= 1 && day <= days
}

// IsValidDate reports whether date's calendar fields are in range.
// Any time.Time built by the time package passes unless its year leaves 1..9999.
func IsValidDate(date time.Time) bool {
	return IsValidCalendarDate(date.Year(), int(date.Month()), date.Day())
}

// IsDateInRange checks start <= date <= end. A date outside the range is
// reported as an OutOfRange error, never as (false, nil); use InRange for a
// plain predicate.
func IsDateInRange(date, start, end time.Time) (bool, error) {
	if !InRange(date, start, end) {
		return false, newError(KindOutOfRange,
			"the date %s is not within the range %s to %s",
			date.Format(time.RFC3339Nano), start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}
	return true, nil
}

// InRange reports whether start <= date <= end
func InRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
