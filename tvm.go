package finance

import (
	"fmt"
	"math"
)

// FutureValue returns the value of a principal compounded at a
// periodic rate over the given number of periods:
// principal × (1+rate)^periods.
//
// The rate must be greater than -1 (a rate of -100% or less is a
// degenerate compounding base) and periods must not be negative;
// both violations fail with ErrDomain. Zero periods return the
// principal unchanged.
func FutureValue(principal, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, fmt.Errorf("%w: periods must not be negative, got %d", ErrDomain, periods)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("%w: rate must be greater than -1, got %g", ErrDomain, rate)
	}
	return principal * math.Pow(1+rate, float64(periods)), nil
}

// PresentValue returns the value today of an amount received after
// the given number of periods, discounted at a periodic rate:
// amount / (1+rate)^periods.
//
// Same domain as FutureValue: rate must be greater than -1, which
// also keeps the denominator away from zero, and periods must not
// be negative.
func PresentValue(amount, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, fmt.Errorf("%w: periods must not be negative, got %d", ErrDomain, periods)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("%w: rate must be greater than -1, got %g", ErrDomain, rate)
	}
	return amount / math.Pow(1+rate, float64(periods)), nil
}

// NetPresentValue discounts a cash flow series at a periodic rate
// and returns the sum Σ flows[i] / (1+rate)^i, with flows[0]
// undiscounted. By convention flows[0] is the initial outlay and is
// typically negative.
//
// The series must not be empty (ErrInvalidSeries) and rate must be
// greater than -1 (ErrDomain).
func NetPresentValue(rate float64, flows []float64) (float64, error) {
	if len(flows) == 0 {
		return 0, fmt.Errorf("%w: empty cash flow series", ErrInvalidSeries)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("%w: rate must be greater than -1, got %g", ErrDomain, rate)
	}
	return npvAt(rate, flows), nil
}

// npvAt computes the net present value without validating its inputs.
func npvAt(rate float64, flows []float64) float64 {
	total, factor := 0.0, 1.0
	for _, flow := range flows {
		total += flow / factor
		factor *= 1 + rate
	}
	return total
}
