package dateutil

import (
	"strings"
	"time"
)

// Unit is a calendar or clock unit used by Increment and CalculateDifference
type Unit int

const (
	Days Unit = iota + 1
	Hours
	Milliseconds
	Minutes
	Months
	Seconds
	Weeks
	Years
)

var unitNames = map[Unit]string{
	Days:         "days",
	Hours:        "hours",
	Milliseconds: "milliseconds",
	Minutes:      "minutes",
	Months:       "months",
	Seconds:      "seconds",
	Weeks:        "weeks",
	Years:        "years",
}

// Units returns every unit in declaration order
func Units() []Unit {
	return []Unit{Days, Hours, Milliseconds, Minutes, Months, Seconds, Weeks, Years}
}

// IncrementUnits returns the units accepted by Increment and Decrement
func IncrementUnits() []Unit {
	return []Unit{Days, Hours, Minutes, Seconds, Weeks, Years}
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

// ParseUnit resolves a plural unit name such as "days" or "weeks"
func ParseUnit(name string) (Unit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, u := range Units() {
		if unitNames[u] == name {
			return u, nil
		}
	}
	return 0, newError(KindInvalidArgument,
		"invalid unit %q: must be one of %s", name, joinUnits(Units()))
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// clockDuration is the fixed length of the sub-day units
func (u Unit) clockDuration() (time.Duration, bool) {
	switch u {
	case Hours:
		return time.Hour, true
	case Minutes:
		return time.Minute, true
	case Seconds:
		return time.Second, true
	case Milliseconds:
		return time.Millisecond, true
	}
	return 0, false
}

func joinUnits(units []Unit) string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = "'" + u.String() + "'"
	}
	return strings.Join(names, ", ")
}
