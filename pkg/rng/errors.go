package rng

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a distribution parameter is outside of its valid range.  The
// value returned alongside it is the legacy sentinel (-1.0, -1 or false) and should not be used.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("rng: %s: %s", e.Op, e.Reason)
}

// IsInvalidArgument reports whether err was caused by an invalid distribution parameter
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// check returns an InvalidArgumentError for op unless ok holds.  Conditions are written so that
// NaN parameters fail them.
func (g *Generator) check(ok bool, op string, reason string) error {
	if ok {
		return nil
	}
	return g.invalid(op, reason)
}

// invalid reports the bad parameter on the diagnostic logger and returns the matching error
func (g *Generator) invalid(op string, reason string) error {
	g.log.Warn().Str("op", op).Str("reason", reason).Msg("invalid argument")
	return &InvalidArgumentError{Op: op, Reason: reason}
}
