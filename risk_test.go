package finance

import (
	"errors"
	"math"
	"testing"
)

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name     string
		returns  []float64
		riskFree float64
		want     float64
		delta    float64
	}{
		// 0.0075 excess over a 0.01708 standard deviation.
		{"positive excess", []float64{0.01, 0.02, -0.01, 0.03}, 0.005, 0.43915503, 1e-6},
		{"zero risk free", []float64{0.01, 0.02, -0.01, 0.03}, 0, 0.73192506, 1e-6},
		{"negative excess", []float64{0.01, 0.02, -0.01, 0.03}, 0.02, -0.43915503, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SharpeRatio(tt.returns, tt.riskFree)
			if err != nil {
				t.Fatalf("SharpeRatio() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("SharpeRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSharpeRatio_Errors(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		wantErr error
	}{
		{"zero volatility", []float64{0.01, 0.01, 0.01}, ErrZeroDenominator},
		{"single observation", []float64{0.01}, ErrInvalidSeries},
		{"empty series", nil, ErrInvalidSeries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SharpeRatio(tt.returns, 0.005); !errors.Is(err, tt.wantErr) {
				t.Errorf("SharpeRatio() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBeta(t *testing.T) {
	// cov(asset, market) = 0.0003, var(market) = 0.000225.
	asset := []float64{0.02, 0.03, -0.01}
	market := []float64{0.01, 0.025, -0.005}

	got, err := Beta(asset, market)
	if err != nil {
		t.Fatalf("Beta() error = %v", err)
	}
	if want, delta := 4.0/3.0, 1e-9; math.Abs(got-want) > delta {
		t.Errorf("Beta() = %v, want %v", got, want)
	}
}

// An asset that is the market has a beta of one.
func TestBeta_Identity(t *testing.T) {
	market := []float64{0.01, 0.025, -0.005, 0.02}

	got, err := Beta(market, market)
	if err != nil {
		t.Fatalf("Beta() error = %v", err)
	}
	if want, delta := 1.0, 1e-12; math.Abs(got-want) > delta {
		t.Errorf("Beta(x, x) = %v, want %v", got, want)
	}
}

func TestBeta_Errors(t *testing.T) {
	tests := []struct {
		name          string
		asset, market []float64
		wantErr       error
	}{
		{"flat market", []float64{0.02, 0.03, -0.01}, []float64{0.01, 0.01, 0.01}, ErrZeroDenominator},
		{"length mismatch", []float64{0.02, 0.03}, []float64{0.01, 0.025, -0.005}, ErrInvalidSeries},
		{"too short", []float64{0.02}, []float64{0.01}, ErrInvalidSeries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Beta(tt.asset, tt.market); !errors.Is(err, tt.wantErr) {
				t.Errorf("Beta() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCAPMExpectedReturn(t *testing.T) {
	asset := []float64{0.02, 0.03, -0.01}
	market := []float64{0.01, 0.025, -0.005}

	// riskFree + beta × (marketMean - riskFree)
	// = 0.005 + 4/3 × (0.01 - 0.005).
	got, err := CAPMExpectedReturn(0.005, asset, market)
	if err != nil {
		t.Fatalf("CAPMExpectedReturn() error = %v", err)
	}
	if want, delta := 0.011666666666666667, 1e-9; math.Abs(got-want) > delta {
		t.Errorf("CAPMExpectedReturn() = %v, want %v", got, want)
	}
}

func TestCAPMExpectedReturn_FlatMarket(t *testing.T) {
	asset := []float64{0.02, 0.03, -0.01}
	market := []float64{0.01, 0.01, 0.01}

	if _, err := CAPMExpectedReturn(0.005, asset, market); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("CAPMExpectedReturn() error = %v, want ErrZeroDenominator", err)
	}
}
