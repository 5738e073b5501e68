package dateutil

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Util answers questions about the current instant. It reads the time from
// its clock and reports it in its location. A Util is immutable and safe for
// concurrent use.
type Util struct {
	clock    clockwork.Clock
	location *time.Location
	logger   *zap.Logger
}

// Option configures a Util
type Option func(*Util)

// WithClock sets the clock the Util reads the current instant from
func WithClock(clock clockwork.Clock) Option {
	return func(u *Util) {
		if clock != nil {
			u.clock = clock
		}
	}
}

// WithLocation sets the location current instants are reported in
func WithLocation(loc *time.Location) Option {
	return func(u *Util) {
		if loc != nil {
			u.location = loc
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *zap.Logger) Option {
	return func(u *Util) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// New creates a Util over the real clock in time.Local unless overridden
func New(opts ...Option) *Util {
	u := &Util{
		clock:    clockwork.NewRealClock(),
		location: time.Local,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var defaultUtil = New()

// Default returns the shared Util over the real clock in time.Local
func Default() *Util {
	return defaultUtil
}

// Location returns the location current instants are reported in
func (u *Util) Location() *time.Location {
	return u.location
}

// Now returns the current instant at full precision
func (u *Util) Now() time.Time {
	return u.clock.Now().In(u.location)
}

// Today returns the current date at midnight
func (u *Util) Today() time.Time {
	return StartOfDay(u.Now())
}

// Tomorrow returns tomorrow's date at midnight
func (u *Util) Tomorrow() time.Time {
	return u.Today().AddDate(0, 0, 1)
}

// Yesterday returns yesterday's date at midnight
func (u *Util) Yesterday() time.Time {
	return u.Today().AddDate(0, 0, -1)
}

// DayAfterTomorrow returns the date two days ahead at midnight
func (u *Util) DayAfterTomorrow() time.Time {
	return u.Today().AddDate(0, 0, 2)
}

// DayBeforeYesterday returns the date two days back at midnight
func (u *Util) DayBeforeYesterday() time.Time {
	return u.Today().AddDate(0, 0, -2)
}

// Day returns the current day of the month
func (u *Util) Day() int {
	return u.Now().Day()
}

// Month returns the current month
func (u *Util) Month() time.Month {
	return u.Now().Month()
}

// Year returns the current year
func (u *Util) Year() int {
	return u.Now().Year()
}

// Week returns the current ISO week number
func (u *Util) Week() int {
	_, week := u.Now().ISOWeek()
	return week
}

// TimeOfDay returns the current time as unpadded "H:M:S"
func (u *Util) TimeOfDay() string {
	return timeOfDay(u.Now())
}

// Summary describes the current instant as "year=Y, month=M, day=D, week=W, time=H:M:S"
func (u *Util) Summary() string {
	now := u.Now()
	_, week := now.ISOWeek()
	return fmt.Sprintf("year=%d, month=%d, day=%d, week=%d, time=%s",
		now.Year(), int(now.Month()), now.Day(), week, timeOfDay(now))
}

func timeOfDay(t time.Time) string {
	return fmt.Sprintf("%d:%d:%d", t.Hour(), t.Minute(), t.Second())
}

// Boundaries of the period containing Now().

func (u *Util) StartOfDay() time.Time   { return StartOfDay(u.Now()) }
func (u *Util) EndOfDay() time.Time     { return EndOfDay(u.Now()) }
func (u *Util) StartOfWeek() time.Time  { return StartOfWeek(u.Now()) }
func (u *Util) EndOfWeek() time.Time    { return EndOfWeek(u.Now()) }
func (u *Util) StartOfMonth() time.Time { return StartOfMonth(u.Now()) }
func (u *Util) EndOfMonth() time.Time   { return EndOfMonth(u.Now()) }
func (u *Util) StartOfYear() time.Time  { return StartOfYear(u.Now()) }
func (u *Util) EndOfYear() time.Time    { return EndOfYear(u.Now()) }

// IsToday compares the date portion of date with today, in the Util location
func (u *Util) IsToday(date time.Time) bool {
	return IsSameDay(date.In(u.location), u.Today())
}

// IsTomorrow compares the date portion of date with tomorrow
func (u *Util) IsTomorrow(date time.Time) bool {
	return IsSameDay(date.In(u.location), u.Tomorrow())
}

// IsYesterday compares the date portion of date with yesterday
func (u *Util) IsYesterday(date time.Time) bool {
	return IsSameDay(date.In(u.location), u.Yesterday())
}

// DaysInThisMonth returns the number of days in the current month
func (u *Util) DaysInThisMonth() int {
	now := u.Now()
	// the current month is always in range
	days, _ := DaysInMonth(now.Month(), now.Year())
	return days
}

// DifferenceSince returns Now() - start in unit. See CalculateDifference.
func (u *Util) DifferenceSince(start time.Time, unit Unit) (float64, error) {
	return CalculateDifference(start, u.Now(), unit)
}

// SecondsSince returns the seconds elapsed since start
func (u *Util) SecondsSince(start time.Time) (float64, error) {
	return u.DifferenceSince(start, Seconds)
}

// MillisecondsSince returns the milliseconds elapsed since start
func (u *Util) MillisecondsSince(start time.Time) (float64, error) {
	return u.DifferenceSince(start, Milliseconds)
}

// ParseDate parses text with format f; formats without an offset are read in the Util location
func (u *Util) ParseDate(text string, f DateFormat) (time.Time, error) {
	t, err := ParseDateIn(text, f, u.location)
	if err != nil {
		u.logger.Debug("Failed to parse date",
			zap.String("text", text),
			zap.Stringer("format", f),
			zap.Error(err))
		return time.Time{}, err
	}
	return t, nil
}

// ParseAny tries every DateFormat in order, reading zoneless formats in the Util location
func (u *Util) ParseAny(text string) (time.Time, DateFormat, error) {
	t, f, err := ParseAny(text, u.location)
	if err != nil {
		u.logger.Debug("No date format matched", zap.String("text", text))
		return time.Time{}, 0, err
	}
	return t, f, nil
}

// Now returns the current instant from the default Util
func Now() time.Time {
	return defaultUtil.Now()
}

// Today returns today's date (start of day)
func Today() time.Time {
	return defaultUtil.Today()
}

// Tomorrow returns tomorrow's date (start of day)
func Tomorrow() time.Time {
	return defaultUtil.Tomorrow()
}

// Yesterday returns yesterday's date (start of day)
func Yesterday() time.Time {
	return defaultUtil.Yesterday()
}
