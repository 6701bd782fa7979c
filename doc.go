// Package finance provides a small library of standalone finance
// formulas: time-value-of-money conversions, descriptive statistics
// over return series, two-asset portfolio theory, and a handful of
// risk and performance metrics.
//
// The functions are grouped by topic:
//   - Time Value of Money: FutureValue, PresentValue, NetPresentValue,
//     and InternalRateOfReturn, the latter solved iteratively since no
//     closed form exists in general.
//   - Return Statistics: MeanReturn, Variance, StdDev, Covariance and
//     Correlation, all using the sample (n-1) convention, since return
//     series in finance are samples from an unknown distribution.
//   - Portfolio Theory: PortfolioExpectedReturn and PortfolioVariance
//     for the two-asset case.
//   - Risk and Performance: SharpeRatio, Beta and CAPMExpectedReturn.
//
// Every function is a pure mapping from numeric inputs to a numeric
// output: no shared state, no I/O, no caching, no mutation of the
// input slices. Failures are reported through explicit errors that
// wrap one of the package sentinels (ErrInvalidSeries, ErrDomain,
// ErrZeroDenominator, ErrNoSignChange, ErrNoConvergence), so callers
// can match the failure kind with errors.Is. Because nothing is
// shared, the package is safe for concurrent use without locking.
//
// This package serves as the computation layer for the `fincalc`
// command-line calculator, which adds input parsing and markdown
// report rendering on top of it.
package finance
