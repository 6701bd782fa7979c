package finance

import "errors"

// The package reports every failure by wrapping one of these sentinel
// errors, so callers can classify a failure with errors.Is without
// parsing messages.
var (
	// ErrInvalidSeries reports a structural precondition violation on
	// an input series: empty, too short for the requested statistic,
	// or a length mismatch between paired series.
	ErrInvalidSeries = errors.New("finance: invalid series")

	// ErrDomain reports a mathematically invalid input to a closed
	// form formula, such as a rate at or below -100% fed into
	// compounding, or a negative period count.
	ErrDomain = errors.New("finance: domain error")

	// ErrZeroDenominator reports a computed denominator that is
	// exactly zero, such as the standard deviation of a constant
	// series. The result is undefined and never substituted.
	ErrZeroDenominator = errors.New("finance: division by zero")

	// ErrNoSignChange reports a cash flow series without a sign
	// change, for which no internal rate of return exists.
	ErrNoSignChange = errors.New("finance: no sign change in cash flows")

	// ErrNoConvergence reports that the rate solver exhausted its
	// means, either its iteration budget or its search bracket,
	// without reaching tolerance.
	ErrNoConvergence = errors.New("finance: no convergence")
)
