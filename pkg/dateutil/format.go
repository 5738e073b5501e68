package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DateFormat names one of the fixed strftime patterns used for rendering and parsing
type DateFormat int

const (
	ISO8601 DateFormat = iota
	RFC2822
	USDate
	UKDate
	EUDate
	CustomDate
)

// DefaultValidationPattern is the pattern IsValidDateFormat callers usually want
const DefaultValidationPattern = "%Y-%m-%d"

type formatDef struct {
	name    string
	pattern string
}

// Indexed by DateFormat; every variant has exactly one pattern.
var formatDefs = [...]formatDef{
	ISO8601:    {"iso8601", "%Y-%m-%dT%H:%M:%S.%fZ"},
	RFC2822:    {"rfc2822", "%a, %d %b %Y %H:%M:%S %z"},
	USDate:     {"us", "%m/%d/%Y"},
	UKDate:     {"uk", "%d/%m/%Y"},
	EUDate:     {"eu", "%d.%m.%Y"},
	CustomDate: {"custom", "%Y-%m-%d %H:%M:%S"},
}

// DateFormats returns every format in declaration order
func DateFormats() []DateFormat {
	formats := make([]DateFormat, len(formatDefs))
	for i := range formatDefs {
		formats[i] = DateFormat(i)
	}
	return formats
}

// ParseDateFormat resolves a format by name ("iso8601", "rfc2822", "us", "uk", "eu", "custom")
func ParseDateFormat(name string) (DateFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, def := range formatDefs {
		if def.name == name {
			return DateFormat(i), nil
		}
	}
	names := make([]string, len(formatDefs))
	for i, def := range formatDefs {
		names[i] = def.name
	}
	return 0, newError(KindInvalidArgument,
		"invalid date format %q: must be one of %s", name, strings.Join(names, ", "))
}

func (f DateFormat) valid() bool {
	return f >= 0 && int(f) < len(formatDefs)
}

// String returns the format name
func (f DateFormat) String() string {
	if !f.valid() {
		return fmt.Sprintf("DateFormat(%d)", int(f))
	}
	return formatDefs[f].name
}

// Pattern returns the strftime pattern of the format
func (f DateFormat) Pattern() string {
	if !f.valid() {
		return ""
	}
	return formatDefs[f].pattern
}

// zoned reports whether the pattern carries a UTC offset.
// The trailing Z of ISO8601 is a literal, not an offset.
func (f DateFormat) zoned() bool {
	return f == RFC2822
}

// Format renders t with the format's pattern
func (f DateFormat) Format(t time.Time) string {
	return strftime.Format(f.Pattern(), t)
}

// Parse parses text with the format's pattern. See ParseDateIn.
func (f DateFormat) Parse(text string) (time.Time, error) {
	return ParseDateIn(text, f, time.UTC)
}

// MarshalText implements encoding.TextMarshaler
func (f DateFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *DateFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseDateFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// FormatDate renders t with the given format
func FormatDate(t time.Time, f DateFormat) string {
	return f.Format(t)
}

// ParseDate parses text with the given format. Fields without an offset are read as UTC.
func ParseDate(text string, f DateFormat) (time.Time, error) {
	return ParseDateIn(text, f, time.UTC)
}

// ParseDateString is an alias of ParseDate
func ParseDateString(text string, f DateFormat) (time.Time, error) {
	return ParseDate(text, f)
}

// ParseDateIn parses text with the given format. Formats without a UTC offset
// yield wall-clock fields interpreted in loc; RFC2822 keeps its own offset.
func ParseDateIn(text string, f DateFormat, loc *time.Location) (time.Time, error) {
	if !f.valid() {
		return time.Time{}, newError(KindInvalidArgument, "invalid date format %d", int(f))
	}

	t, err := parsePattern(f.Pattern(), text)
	if err != nil {
		return time.Time{}, wrapError(KindParseFailure, err,
			"invalid date format: %s. Expected format: %s", text, f.Pattern())
	}

	if !f.zoned() && loc != nil {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	}
	return t, nil
}

// ParseAny tries every DateFormat in declaration order and returns the first match
func ParseAny(text string, loc *time.Location) (time.Time, DateFormat, error) {
	var lastErr error
	for _, f := range DateFormats() {
		t, err := ParseDateIn(text, f, loc)
		if err == nil {
			return t, f, nil
		}
		lastErr = err
	}
	return time.Time{}, 0, wrapError(KindParseFailure, lastErr,
		"%q does not match any known date format", text)
}

// IsValidDateFormat reports whether text parses with the raw strftime pattern.
//
// Directives go-strftime cannot parse make every text invalid: the week-based
// %U, %W, %V, %G, %u and %w render but have no parse layout.
func IsValidDateFormat(text, pattern string) bool {
	_, err := parsePattern(pattern, text)
	return err == nil
}

// fractionDirective spells sub-second digits in a pattern
const fractionDirective = ".%f"

var errMissingFraction = errors.New("missing fractional seconds")

// parsePattern is strftime.Parse, except that ".%f" takes one to nine digits
// instead of exactly six. time.Parse reads any fraction that directly follows
// the seconds field, so the directive is dropped from the layout and the
// fraction's presence is checked by counting dots.
func parsePattern(pattern, text string) (time.Time, error) {
	if !strings.Contains(pattern, fractionDirective) {
		return strftime.Parse(pattern, text)
	}

	stripped := strings.Replace(pattern, fractionDirective, "", 1)
	t, err := strftime.Parse(stripped, text)
	if err != nil {
		return time.Time{}, err
	}
	if strings.Count(text, ".") <= strings.Count(stripped, ".") {
		return time.Time{}, errMissingFraction
	}
	return t, nil
}

// FormatISO8601 renders date with milliseconds and a numeric offset, for
// example 2025-01-15T10:00:00.000+0300. Unlike the ISO8601 DateFormat it
// keeps the zone.
func FormatISO8601(date time.Time) string {
	return date.Format("2006-01-02T15:04:05.000-0700")
}
