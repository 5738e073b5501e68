package main

import (
	"errors"

	"github.com/username/dateutil/pkg/dateutil"
)

// Exit codes
const (
	exitSuccess      = 0
	exitGeneral      = 1
	exitUsage        = 2
	exitParseFailure = 3
	exitRange        = 4
	exitInvalidDate  = 5
)

// exitError carries an explicit exit code. A nil Err exits silently.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *exitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &exitError{Code: exitUsage, Err: err}
}

// exitCode maps an error to the process exit code
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	switch dateutil.KindOf(err) {
	case dateutil.KindInvalidArgument:
		return exitUsage
	case dateutil.KindParseFailure:
		return exitParseFailure
	case dateutil.KindInvalidRange, dateutil.KindOutOfRange:
		return exitRange
	case dateutil.KindInvalidDate:
		return exitInvalidDate
	default:
		return exitGeneral
	}
}
