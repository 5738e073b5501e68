package dateutil

import (
	"math"
	"time"
)

const (
	minYear = 1
	maxYear = 9999

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPerWeek      = 7
	daysPerYear      = 365

	// maxDaySpan is one more than the days from 0001-01-01 to 9999-12-31.
	// A longer shift cannot land inside the supported years.
	maxDaySpan = 3652059
)

// Increment adds amount units to t.
//
// Days and weeks move the calendar date and keep the wall clock; hours,
// minutes and seconds add elapsed time. Years shift the year field directly,
// so Feb 29 moved into a non-leap year is an InvalidDate error, not Feb 28.
// Months and milliseconds are not accepted. A result outside years 1..9999
// is an InvalidDate error, however large the amount.
func Increment(t time.Time, unit Unit, amount int) (time.Time, error) {
	var result time.Time

	switch unit {
	case Days, Weeks:
		// AddDate wraps silently on huge day counts
		span := maxDaySpan
		if unit == Weeks {
			span /= daysPerWeek
		}
		if amount > span || amount < -span {
			return time.Time{}, spanError(t, unit, amount)
		}
		days := amount
		if unit == Weeks {
			days *= daysPerWeek
		}
		result = t.AddDate(0, 0, days)
	case Hours, Minutes, Seconds:
		d, _ := unit.clockDuration()
		if int64(amount) > math.MaxInt64/int64(d) || int64(amount) < math.MinInt64/int64(d) {
			return time.Time{}, newError(KindInvalidArgument, "amount %d %s overflows", amount, unit)
		}
		result = t.Add(time.Duration(amount) * d)
	case Years:
		if amount > maxYear || amount < -maxYear {
			return time.Time{}, spanError(t, unit, amount)
		}
		year := t.Year() + amount
		if !IsValidCalendarDate(year, int(t.Month()), t.Day()) {
			return time.Time{}, newError(KindInvalidDate,
				"cannot shift %s by %d years: day is out of range for month", t.Format("2006-01-02"), amount)
		}
		result = time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	default:
		return time.Time{}, newError(KindInvalidArgument,
			"invalid unit %q: must be one of %s", unit, joinUnits(IncrementUnits()))
	}

	if result.Year() < minYear || result.Year() > maxYear {
		return time.Time{}, newError(KindInvalidDate, "year %d is out of range", result.Year())
	}
	return result, nil
}

// Decrement subtracts amount units from t. It is Increment with a negated amount.
func Decrement(t time.Time, unit Unit, amount int) (time.Time, error) {
	if amount == math.MinInt {
		return time.Time{}, newError(KindInvalidArgument, "amount %d %s cannot be negated", amount, unit)
	}
	return Increment(t, unit, -amount)
}

func spanError(t time.Time, unit Unit, amount int) error {
	return newError(KindInvalidDate,
		"cannot shift %s by %d %s: result is outside years %d to %d", t.Format("2006-01-02"), amount, unit, minYear, maxYear)
}

// CalculateDifference returns end - start expressed in unit.
//
// Days, hours, minutes, weeks and years are truncated to whole units; seconds
// and milliseconds keep the fraction. Months is the calendar field difference
// (end.year-start.year)*12 + end.month-start.month and ignores the day of month.
// Years is whole days divided by 365 and ignores leap days.
//
// An end before start is an InvalidRange error; the difference is never negative.
func CalculateDifference(start, end time.Time, unit Unit) (float64, error) {
	if end.Before(start) {
		return 0, newError(KindInvalidRange, "end date cannot be before start date")
	}

	// Unix seconds avoid the ±292 year saturation of time.Time.Sub.
	secs := end.Unix() - start.Unix()
	nanos := int64(end.Nanosecond() - start.Nanosecond())
	if nanos < 0 {
		secs--
		nanos += int64(time.Second)
	}
	totalSeconds := float64(secs) + float64(nanos)/float64(time.Second)
	days := secs / secondsPerDay

	switch unit {
	case Days:
		return float64(days), nil
	case Hours:
		return float64(secs / secondsPerHour), nil
	case Minutes:
		return float64(secs / secondsPerMinute), nil
	case Seconds:
		return totalSeconds, nil
	case Milliseconds:
		return totalSeconds * 1000, nil
	case Months:
		return float64((end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())), nil
	case Weeks:
		return float64(days / daysPerWeek), nil
	case Years:
		return float64(days / daysPerYear), nil
	default:
		return 0, newError(KindInvalidArgument,
			"invalid unit %q: must be one of %s", unit, joinUnits(Units()))
	}
}

// DifferenceInDays returns the whole days between start and end
func DifferenceInDays(start, end time.Time) (int64, error) {
	return wholeDifference(start, end, Days)
}

// DifferenceInHours returns the whole hours between start and end
func DifferenceInHours(start, end time.Time) (int64, error) {
	return wholeDifference(start, end, Hours)
}

// DifferenceInMinutes returns the whole minutes between start and end
func DifferenceInMinutes(start, end time.Time) (int64, error) {
	return wholeDifference(start, end, Minutes)
}

// DifferenceInMonths returns the calendar month field difference
func DifferenceInMonths(start, end time.Time) (int64, error) {
	return wholeDifference(start, end, Months)
}

// DifferenceInWeeks returns the whole weeks between start and end
func DifferenceInWeeks(start, end time.Time) (int64, error) {
	return wholeDifference(start, end, Weeks)
}

// DifferenceInYears returns whole 365-day years between start and end
func DifferenceInYears(start, end time.Time) (int64, error) {
	return wholeDifference(start, end, Years)
}

// DifferenceInSeconds returns the elapsed seconds, with fraction
func DifferenceInSeconds(start, end time.Time) (float64, error) {
	return CalculateDifference(start, end, Seconds)
}

// DifferenceInMilliseconds returns the elapsed milliseconds, with fraction
func DifferenceInMilliseconds(start, end time.Time) (float64, error) {
	return CalculateDifference(start, end, Milliseconds)
}

func wholeDifference(start, end time.Time, unit Unit) (int64, error) {
	v, err := CalculateDifference(start, end, unit)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
