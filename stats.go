package finance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanReturn returns the arithmetic mean of a return series.
// The series must not be empty.
func MeanReturn(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("%w: empty return series", ErrInvalidSeries)
	}
	return stat.Mean(returns, nil), nil
}

// Variance returns the sample variance of a return series, dividing
// by n-1. The sample convention is used throughout the package:
// observed returns are a sample from an unknown distribution, not
// the whole population. The series must hold at least two
// observations, sample variance is undefined for one.
func Variance(returns []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: sample variance needs at least 2 observations, got %d", ErrInvalidSeries, len(returns))
	}
	return stat.Variance(returns, nil), nil
}

// StdDev returns the sample standard deviation of a return series,
// the square root of Variance. It inherits Variance's preconditions.
func StdDev(returns []float64) (float64, error) {
	v, err := Variance(returns)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Covariance returns the sample covariance of two return series,
// dividing by n-1. The series must be equal length (the caller is
// responsible for index alignment, which cannot be verified here)
// and hold at least two observations.
func Covariance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: length mismatch, %d vs %d", ErrInvalidSeries, len(a), len(b))
	}
	if len(a) < 2 {
		return 0, fmt.Errorf("%w: sample covariance needs at least 2 observations, got %d", ErrInvalidSeries, len(a))
	}
	return stat.Covariance(a, b, nil), nil
}

// Correlation returns the Pearson correlation of two return series:
// their covariance divided by the product of their standard
// deviations. It inherits Covariance's preconditions. A constant
// series has zero deviation and an undefined correlation, reported
// as ErrZeroDenominator, never silently substituted.
func Correlation(a, b []float64) (float64, error) {
	cov, err := Covariance(a, b)
	if err != nil {
		return 0, err
	}
	sda, err := StdDev(a)
	if err != nil {
		return 0, err
	}
	sdb, err := StdDev(b)
	if err != nil {
		return 0, err
	}
	if sda == 0 || sdb == 0 {
		return 0, fmt.Errorf("%w: correlation of a constant series", ErrZeroDenominator)
	}
	return cov / (sda * sdb), nil
}
