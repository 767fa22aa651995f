package bezier

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the error wrapped by the panic values of evaluators
	// that were given a parameter outside of [0, 1].
	ErrOutOfRange = errors.New("parameter out of range")

	// ErrPointCount is returned when a curve is given a number of control
	// points other than 3 or 4.
	ErrPointCount = errors.New("a Bézier curve needs 3 or 4 control points")
)

// RangeError describes a parameter outside of [0, 1]. Operations panic with
// a *RangeError, as calling them with such a parameter is a programming
// error.
type RangeError struct {
	Op    string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bezier: %s: %g not in [0, 1]", e.Op, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// checkT panics if t is not in [0, 1].
func checkT(op string, t float64) {
	// NaN fails both comparisons.
	if !(t >= 0 && t <= 1) {
		panic(&RangeError{Op: op, Value: t})
	}
}
