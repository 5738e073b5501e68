package dateutil

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := newError(KindInvalidDate, "day is out of range for month")

	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("errors.Is(%v, ErrInvalidDate) = false, want true", err)
	}
	if errors.Is(err, ErrParseFailure) {
		t.Errorf("errors.Is(%v, ErrParseFailure) = true, want false", err)
	}
	if errors.Is(err, newError(KindInvalidDate, "day is out of range for month")) {
		t.Error("two concrete errors must not match each other")
	}

	wrapped := fmt.Errorf("shift failed: %w", err)
	if !errors.Is(wrapped, ErrInvalidDate) {
		t.Errorf("errors.Is(%v, ErrInvalidDate) = false through fmt wrapping", wrapped)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := wrapError(KindParseFailure, io.ErrUnexpectedEOF, "invalid date format: %s", "2024")

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("errors.Is(%v, io.ErrUnexpectedEOF) = false, want true", err)
	}
	if got, want := err.Error(), "invalid date format: 2024: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"foreign error", io.EOF, KindUnknown},
		{"direct", newError(KindOutOfRange, "outside"), KindOutOfRange},
		{"wrapped", fmt.Errorf("context: %w", newError(KindInvalidRange, "swapped")), KindInvalidRange},
		{"sentinel", ErrInvalidArgument, KindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindParseFailure.String(); got != "ParseFailure" {
		t.Errorf("KindParseFailure.String() = %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
	if got := ErrOutOfRange.Error(); got != "OutOfRange" {
		t.Errorf("ErrOutOfRange.Error() = %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	for _, u := range Units() {
		got, err := ParseUnit(" " + u.String() + " ")
		if err != nil {
			t.Errorf("ParseUnit(%q) unexpected error: %v", u, err)
			continue
		}
		if got != u {
			t.Errorf("ParseUnit(%q) = %s, want %s", u, got, u)
		}
	}

	_, err := ParseUnit("fortnights")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ParseUnit(fortnights) error = %v, want InvalidArgument", err)
	}
	want := `invalid unit "fortnights": must be one of 'days', 'hours', 'milliseconds', 'minutes', 'months', 'seconds', 'weeks', 'years'`
	if err.Error() != want {
		t.Errorf("ParseUnit(fortnights) error = %q, want %q", err.Error(), want)
	}

	var u Unit
	if err := u.UnmarshalText([]byte("Weeks")); err != nil || u != Weeks {
		t.Errorf("UnmarshalText(Weeks) = %s, %v", u, err)
	}
	if got := Unit(0).String(); got != "unknown" {
		t.Errorf("Unit(0).String() = %q, want unknown", got)
	}
}
