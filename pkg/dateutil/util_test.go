package dateutil

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestUtil(now time.Time, loc *time.Location) (*Util, clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(now)
	return New(WithClock(clock), WithLocation(loc)), clock
}

func TestUtilRelativeDays(t *testing.T) {
	u, _ := newTestUtil(time.Date(2024, 3, 1, 15, 30, 45, 500, time.UTC), time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"Now", u.Now(), time.Date(2024, 3, 1, 15, 30, 45, 500, time.UTC)},
		{"Today", u.Today(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Tomorrow", u.Tomorrow(), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"Yesterday", u.Yesterday(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"DayAfterTomorrow", u.DayAfterTomorrow(), time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"DayBeforeYesterday", u.DayBeforeYesterday(), time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"StartOfWeek", u.StartOfWeek(), time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)},
		{"EndOfWeek", u.EndOfWeek(), time.Date(2024, 3, 3, 23, 59, 59, 999999999, time.UTC)},
		{"StartOfMonth", u.StartOfMonth(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"EndOfMonth", u.EndOfMonth(), time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)},
		{"StartOfYear", u.StartOfYear(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"EndOfYear", u.EndOfYear(), time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC)},
		{"StartOfDay", u.StartOfDay(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"EndOfDay", u.EndOfDay(), time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestUtilFields(t *testing.T) {
	u, _ := newTestUtil(time.Date(2024, 1, 15, 9, 5, 3, 0, time.UTC), time.UTC)

	if got := u.Day(); got != 15 {
		t.Errorf("Day() = %d, want 15", got)
	}
	if got := u.Month(); got != time.January {
		t.Errorf("Month() = %v, want January", got)
	}
	if got := u.Year(); got != 2024 {
		t.Errorf("Year() = %d, want 2024", got)
	}
	if got := u.Week(); got != 3 {
		t.Errorf("Week() = %d, want 3", got)
	}
	if got := u.TimeOfDay(); got != "9:5:3" {
		t.Errorf("TimeOfDay() = %q, want 9:5:3", got)
	}
	if got, want := u.Summary(), "year=2024, month=1, day=15, week=3, time=9:5:3"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if got := u.DaysInThisMonth(); got != 31 {
		t.Errorf("DaysInThisMonth() = %d, want 31", got)
	}
}

func TestUtilLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 20:00 UTC is already the next day in Tokyo
	u, _ := newTestUtil(time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), tokyo)

	if u.Location() != tokyo {
		t.Errorf("Location() = %v, want JST", u.Location())
	}
	if got, want := u.Today(), time.Date(2025, 1, 1, 0, 0, 0, 0, tokyo); !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}
	if got := u.Year(); got != 2025 {
		t.Errorf("Year() = %d, want 2025", got)
	}
}

func TestUtilRelativePredicates(t *testing.T) {
	u, _ := newTestUtil(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), time.UTC)

	tests := []struct {
		name                       string
		date                       time.Time
		today, tomorrow, yesterday bool
	}{
		{"Late today", time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC), true, false, false},
		{"Early tomorrow", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), false, true, false},
		{"Leap day yesterday", time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC), false, false, true},
		{"Next year", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), false, false, false},
		{
			"Other zone converted first",
			time.Date(2024, 3, 2, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			true, false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.IsToday(tt.date); got != tt.today {
				t.Errorf("IsToday(%v) = %v, want %v", tt.date, got, tt.today)
			}
			if got := u.IsTomorrow(tt.date); got != tt.tomorrow {
				t.Errorf("IsTomorrow(%v) = %v, want %v", tt.date, got, tt.tomorrow)
			}
			if got := u.IsYesterday(tt.date); got != tt.yesterday {
				t.Errorf("IsYesterday(%v) = %v, want %v", tt.date, got, tt.yesterday)
			}
		})
	}
}

func TestUtilDifferenceSince(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u, clock := newTestUtil(start, time.UTC)

	clock.Advance(36 * time.Hour)

	days, err := u.DifferenceSince(start, Days)
	if err != nil || days != 1 {
		t.Errorf("DifferenceSince(days) = %v, %v, want 1", days, err)
	}
	ms, err := u.MillisecondsSince(start)
	if err != nil || ms != 36*3600*1000 {
		t.Errorf("MillisecondsSince() = %v, %v, want %d", ms, err, 36*3600*1000)
	}
	if _, err := u.SecondsSince(start.Add(48 * time.Hour)); KindOf(err) != KindInvalidRange {
		t.Errorf("SecondsSince(future) error = %v, want InvalidRange", err)
	}
}

func TestUtilParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	core, logs := observer.New(zap.DebugLevel)
	u := New(WithLocation(loc), WithLogger(zap.New(core)))

	got, err := u.ParseDate("15.01.2024", EUDate)
	if err != nil {
		t.Fatalf("ParseDate unexpected error: %v", err)
	}
	if want := time.Date(2024, 1, 15, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("ParseDate(eu) = %v, want %v", got, want)
	}

	if _, err := u.ParseDate("2024-01-15", EUDate); KindOf(err) != KindParseFailure {
		t.Errorf("ParseDate(mismatch) error = %v, want ParseFailure", err)
	}
	if logs.FilterMessage("Failed to parse date").Len() != 1 {
		t.Errorf("expected one debug entry for the failed parse, got %d", logs.Len())
	}

	got, f, err := u.ParseAny("01/02/2024")
	if err != nil || f != USDate {
		t.Fatalf("ParseAny() = %v, %s, %v, want us", got, f, err)
	}
	if want := time.Date(2024, 1, 2, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("ParseAny(us) = %v, want %v", got, want)
	}
}

func TestNewIgnoresNilOptions(t *testing.T) {
	u := New(WithClock(nil), WithLocation(nil), WithLogger(nil))

	if u.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", u.Location())
	}
	if u.Now().IsZero() {
		t.Error("Now() is zero with the default clock")
	}
}

func TestPackageLevelToday(t *testing.T) {
	today := Today()

	if !today.Equal(StartOfDay(today)) {
		t.Errorf("Today() = %v, not at midnight", today)
	}
	if got := Tomorrow().Sub(Yesterday()); got < 47*time.Hour || got > 49*time.Hour {
		t.Errorf("Tomorrow() - Yesterday() = %v, want about 48h", got)
	}
	if Now().Before(today) {
		t.Errorf("Now() is before Today()")
	}
}
