package finance

// PortfolioExpectedReturn returns the expected return of a two-asset
// portfolio: w1×mean(returns1) + w2×mean(returns2).
//
// The weights are allocation fractions and should sum to 1; that is
// a documented precondition of the caller, not enforced here, so
// leveraged and short allocations pass through unchanged. The two
// series need not have the same length, each mean is computed
// independently.
func PortfolioExpectedReturn(w1 float64, returns1 []float64, w2 float64, returns2 []float64) (float64, error) {
	m1, err := MeanReturn(returns1)
	if err != nil {
		return 0, err
	}
	m2, err := MeanReturn(returns2)
	if err != nil {
		return 0, err
	}
	return w1*m1 + w2*m2, nil
}

// PortfolioVariance returns the variance of a two-asset portfolio:
// w1²×var1 + w2²×var2 + 2×w1×w2×cov.
//
// The covariance term requires the two series to be equal length and
// index-aligned; a length mismatch fails with ErrInvalidSeries. The
// weight precondition is the same as for PortfolioExpectedReturn.
func PortfolioVariance(w1 float64, returns1 []float64, w2 float64, returns2 []float64) (float64, error) {
	cov, err := Covariance(returns1, returns2)
	if err != nil {
		return 0, err
	}
	v1, err := Variance(returns1)
	if err != nil {
		return 0, err
	}
	v2, err := Variance(returns2)
	if err != nil {
		return 0, err
	}
	return w1*w1*v1 + w2*w2*v2 + 2*w1*w2*cov, nil
}
