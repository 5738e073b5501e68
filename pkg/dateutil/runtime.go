package dateutil

import (
	"go.uber.org/zap"
)

// ExecutionTime is the wall-clock time a call took
type ExecutionTime struct {
	Seconds      float64 `json:"seconds" yaml:"seconds"`
	Milliseconds float64 `json:"milliseconds" yaml:"milliseconds"`
}

// Runtime pairs a call's result with its execution time
type Runtime[T any] struct {
	Result        T             `json:"result" yaml:"result"`
	ExecutionTime ExecutionTime `json:"execution_time" yaml:"execution_time"`
}

// RecordRuntime runs fn and measures it with the default Util
func RecordRuntime[T any](fn func() (T, error)) (Runtime[T], error) {
	return RecordRuntimeWith(defaultUtil, fn)
}

// RecordRuntimeWith runs fn and measures it with u's clock.
//
// An error from fn is returned as is. Seconds and milliseconds are measured
// from the same start but each samples the clock again, so they need not
// describe the same end instant.
func RecordRuntimeWith[T any](u *Util, fn func() (T, error)) (Runtime[T], error) {
	start := u.Now()

	result, err := fn()
	if err != nil {
		return Runtime[T]{}, err
	}

	seconds, err := u.SecondsSince(start)
	if err != nil {
		return Runtime[T]{}, err
	}
	milliseconds, err := u.MillisecondsSince(start)
	if err != nil {
		return Runtime[T]{}, err
	}

	u.logger.Debug("Recorded runtime",
		zap.Float64("seconds", seconds),
		zap.Float64("milliseconds", milliseconds))

	return Runtime[T]{
		Result: result,
		ExecutionTime: ExecutionTime{
			Seconds:      seconds,
			Milliseconds: milliseconds,
		},
	}, nil
}
