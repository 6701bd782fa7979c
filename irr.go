package finance

import (
	"fmt"
	"math"
)

// Settings of the internal rate of return solver.
const (
	irrTolerance = 1e-7  // |npv| below which a rate counts as a root
	irrMaxSteps  = 1000  // iteration budget
	irrBracketLo = -0.99 // lower search bound, just above a -100% rate
	irrBracketHi = 10.0  // upper search bound, a 1000% rate
	irrSeed      = 0.1   // initial guess
)

// InternalRateOfReturn returns the periodic rate at which the net
// present value of the cash flow series is zero.
//
// The root is found by Newton iteration from a 10% seed, falling
// back to one bisection step whenever a Newton step leaves the
// current search interval, all inside the bracket [-0.99, 10.0].
// Iteration stops as soon as |npv| < 1e-7.
//
// The series must not be empty (ErrInvalidSeries) and must hold both
// positive and negative flows, which takes at least two of them; a
// series without a sign change admits no real root and fails with
// ErrNoSignChange. If the solver exhausts its 1000-step budget, or
// the search leaves the bracket while no root is known to lie inside
// it, it fails with ErrNoConvergence rather than returning a guess.
//
// A series with several sign changes may admit several real roots;
// the first root reached from the seed is returned, which is not
// guaranteed to be the economically intended one.
func InternalRateOfReturn(flows []float64) (float64, error) {
	if len(flows) == 0 {
		return 0, fmt.Errorf("%w: empty cash flow series", ErrInvalidSeries)
	}
	if !hasSignChange(flows) {
		return 0, fmt.Errorf("%w: %d flow(s) all on the same side of zero", ErrNoSignChange, len(flows))
	}

	lo, hi := irrBracketLo, irrBracketHi
	flo := npvAt(lo, flows)
	bracketed := flo*npvAt(hi, flows) < 0

	rate := irrSeed
	for step := 0; step < irrMaxSteps; step++ {
		f := npvAt(rate, flows)
		if math.Abs(f) < irrTolerance {
			return rate, nil
		}
		if bracketed {
			// Keep [lo, hi] a sign-change interval around the root.
			if flo*f < 0 {
				hi = rate
			} else {
				lo, flo = rate, f
			}
		}
		next := rate - f/npvSlopeAt(rate, flows)
		if math.IsNaN(next) || next <= lo || next >= hi {
			if !bracketed {
				return 0, fmt.Errorf("%w: no root in [%g, %g]", ErrNoConvergence, irrBracketLo, irrBracketHi)
			}
			next = (lo + hi) / 2
		}
		rate = next
	}
	return 0, fmt.Errorf("%w: tolerance not reached after %d steps", ErrNoConvergence, irrMaxSteps)
}

// hasSignChange reports whether the series holds at least one
// strictly positive and one strictly negative flow.
func hasSignChange(flows []float64) bool {
	var pos, neg bool
	for _, flow := range flows {
		switch {
		case flow > 0:
			pos = true
		case flow < 0:
			neg = true
		}
	}
	return pos && neg
}

// npvSlopeAt is the derivative of npvAt with respect to the rate:
// Σ -i·flows[i] / (1+rate)^(i+1).
func npvSlopeAt(rate float64, flows []float64) float64 {
	base := 1 + rate
	slope := 0.0
	for i, flow := range flows {
		if i == 0 {
			continue
		}
		slope -= float64(i) * flow / math.Pow(base, float64(i+1))
	}
	return slope
}
