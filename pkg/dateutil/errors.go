package dateutil

import (
	"errors"
	"fmt"
)

// Kind classifies a dateutil failure
type Kind int

const (
	// KindUnknown is reported by KindOf for errors that did not come from this package
	KindUnknown Kind = iota
	// KindInvalidArgument: an enumerated value (unit, format, month) outside its closed set
	KindInvalidArgument
	// KindInvalidRange: the end instant precedes the start instant
	KindInvalidRange
	// KindOutOfRange: a range containment check failed
	KindOutOfRange
	// KindParseFailure: text does not match the expected pattern
	KindParseFailure
	// KindInvalidDate: arithmetic produced a calendar date that does not exist
	KindInvalidDate
)

var kindNames = [...]string{
	KindUnknown:         "Unknown",
	KindInvalidArgument: "InvalidArgument",
	KindInvalidRange:    "InvalidRange",
	KindOutOfRange:      "OutOfRange",
	KindParseFailure:    "ParseFailure",
	KindInvalidDate:     "InvalidDate",
}

// String returns the kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sentinels for errors.Is matching by kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrInvalidRange    = &Error{Kind: KindInvalidRange}
	ErrOutOfRange      = &Error{Kind: KindOutOfRange}
	ErrParseFailure    = &Error{Kind: KindParseFailure}
	ErrInvalidDate     = &Error{Kind: KindInvalidDate}
)

// Error is the single error type returned by this package
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel of the same kind.
// Sentinels carry no message, so two concrete errors never match each other.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
