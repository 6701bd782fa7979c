package renderer

import (
	"math"

	"github.com/etnz/finance"
)

// Allocation is a two-asset blend report: the expected return and
// risk of a weighted mix of two return histories.
type Allocation struct {
	// Weight1 and Weight2 are the allocation fractions.
	Weight1 Rate `json:"weight1"`
	Weight2 Rate `json:"weight2"`
	// Expected is the blended expected return per period.
	Expected Rate `json:"expected"`
	// Variance is the blended variance, covariance term included.
	Variance float64 `json:"variance"`
	// Volatility is the square root of Variance.
	Volatility Rate `json:"volatility"`
}

// NewAllocation builds an Allocation report for a two-asset blend.
// The two return histories must be equal length and index-aligned
// for the covariance term.
func NewAllocation(w1 float64, returns1 []float64, w2 float64, returns2 []float64) (*Allocation, error) {
	expected, err := finance.PortfolioExpectedReturn(w1, returns1, w2, returns2)
	if err != nil {
		return nil, err
	}
	variance, err := finance.PortfolioVariance(w1, returns1, w2, returns2)
	if err != nil {
		return nil, err
	}
	// A perfectly hedged blend can land a hair below zero in floats.
	if variance < 0 {
		variance = 0
	}

	return &Allocation{
		Weight1:    Rate(w1),
		Weight2:    Rate(w2),
		Expected:   Rate(expected),
		Variance:   variance,
		Volatility: Rate(math.Sqrt(variance)),
	}, nil
}
