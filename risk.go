package finance

import "fmt"

// SharpeRatio returns the excess return of a series over the
// risk-free rate, per unit of volatility:
// (mean - riskFree) / stddev.
//
// It inherits the preconditions of MeanReturn and StdDev. A constant
// series has zero volatility and an undefined ratio, reported as
// ErrZeroDenominator.
func SharpeRatio(returns []float64, riskFree float64) (float64, error) {
	mean, err := MeanReturn(returns)
	if err != nil {
		return 0, err
	}
	sd, err := StdDev(returns)
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 0, fmt.Errorf("%w: returns have zero volatility", ErrZeroDenominator)
	}
	return (mean - riskFree) / sd, nil
}

// Beta returns the sensitivity of an asset's returns to market
// returns: cov(asset, market) / var(market).
//
// The two series must be equal length and index-aligned, as for
// Covariance. A flat market has zero variance and an undefined
// beta, reported as ErrZeroDenominator.
func Beta(asset, market []float64) (float64, error) {
	cov, err := Covariance(asset, market)
	if err != nil {
		return 0, err
	}
	mv, err := Variance(market)
	if err != nil {
		return 0, err
	}
	if mv == 0 {
		return 0, fmt.Errorf("%w: market returns have zero variance", ErrZeroDenominator)
	}
	return cov / mv, nil
}

// CAPMExpectedReturn returns the capital asset pricing model
// expected return of an asset: riskFree + beta × (marketMean -
// riskFree). It inherits the preconditions of Beta and MeanReturn.
func CAPMExpectedReturn(riskFree float64, asset, market []float64) (float64, error) {
	b, err := Beta(asset, market)
	if err != nil {
		return 0, err
	}
	mm, err := MeanReturn(market)
	if err != nil {
		return 0, err
	}
	return riskFree + b*(mm-riskFree), nil
}
