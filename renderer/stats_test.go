package renderer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/etnz/finance"
)

func TestNewSeriesStats(t *testing.T) {
	s, err := NewSeriesStats("Fund", []float64{0.01, 0.02, -0.01, 0.03})
	if err != nil {
		t.Fatalf("NewSeriesStats() error = %v", err)
	}

	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if !s.Mean.Equal(0.0125) {
		t.Errorf("Mean = %v, want +1.25%%", s.Mean)
	}
	if got, want, delta := s.Variance, 0.000875/3, 1e-12; math.Abs(got-want) > delta {
		t.Errorf("Variance = %v, want %v", got, want)
	}
	if !s.StdDev.Equal(0.0170783) {
		t.Errorf("StdDev = %v, want 1.71%%", s.StdDev)
	}

	if _, err := NewSeriesStats("Fund", []float64{0.01}); !errors.Is(err, finance.ErrInvalidSeries) {
		t.Errorf("NewSeriesStats() error = %v, want ErrInvalidSeries", err)
	}
}

func TestSeriesStatsMarkdown(t *testing.T) {
	s, err := NewSeriesStats("Fund", []float64{0.01, 0.02, -0.01, 0.03})
	if err != nil {
		t.Fatalf("NewSeriesStats() error = %v", err)
	}

	got := SeriesStatsMarkdown(s)
	for _, want := range []string{
		"# Statistics for Fund",
		"Observations",
		"+1.25%",
		"0.000292",
		"1.71%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SeriesStatsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSeriesStatsMarkdown_DefaultName(t *testing.T) {
	s, err := NewSeriesStats("", []float64{0.01, 0.02})
	if err != nil {
		t.Fatalf("NewSeriesStats() error = %v", err)
	}
	if got := SeriesStatsMarkdown(s); !strings.Contains(got, "# Statistics for Return Series") {
		t.Errorf("SeriesStatsMarkdown() missing default title in:\n%s", got)
	}
}

func TestNewPairStats(t *testing.T) {
	a := []float64{0.02, 0.03, -0.01}
	b := []float64{0.01, 0.025, -0.005}

	p, err := NewPairStats("Fund", a, "Index", b)
	if err != nil {
		t.Fatalf("NewPairStats() error = %v", err)
	}

	if p.Count != 3 {
		t.Errorf("Count = %d, want 3", p.Count)
	}
	if got, want, delta := p.Covariance, 0.0003, 1e-12; math.Abs(got-want) > delta {
		t.Errorf("Covariance = %v, want %v", got, want)
	}
	if !p.HasCorrelation {
		t.Fatal("HasCorrelation = false, want true")
	}
	if got, want, delta := p.Correlation, 0.9607689, 1e-6; math.Abs(got-want) > delta {
		t.Errorf("Correlation = %v, want %v", got, want)
	}
}

// A constant series leaves the correlation out of the report instead
// of failing it, the covariance is still well defined.
func TestNewPairStats_ConstantSeries(t *testing.T) {
	p, err := NewPairStats("Fund", []float64{0.01, 0.02, -0.01}, "Flat", []float64{0.02, 0.02, 0.02})
	if err != nil {
		t.Fatalf("NewPairStats() error = %v", err)
	}

	if p.HasCorrelation {
		t.Error("HasCorrelation = true for a constant series")
	}
	if got, want, delta := p.Covariance, 0.0, 1e-12; math.Abs(got-want) > delta {
		t.Errorf("Covariance = %v, want %v", got, want)
	}
}

func TestNewPairStats_Errors(t *testing.T) {
	if _, err := NewPairStats("a", []float64{0.01, 0.02}, "b", []float64{0.01}); !errors.Is(err, finance.ErrInvalidSeries) {
		t.Errorf("NewPairStats() error = %v, want ErrInvalidSeries", err)
	}
}

func TestPairStatsMarkdown(t *testing.T) {
	a := []float64{0.02, 0.03, -0.01}
	b := []float64{0.01, 0.025, -0.005}

	p, err := NewPairStats("Fund", a, "Index", b)
	if err != nil {
		t.Fatalf("NewPairStats() error = %v", err)
	}

	got := PairStatsMarkdown(p)
	for _, want := range []string{
		"# Co-movement of Fund and Index",
		"Aligned observations: 3",
		"| Covariance | 0.000300 |",
		"correlate at +0.9608",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PairStatsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestPairStatsMarkdown_NoCorrelation(t *testing.T) {
	p, err := NewPairStats("Fund", []float64{0.01, 0.02, -0.01}, "Flat", []float64{0.02, 0.02, 0.02})
	if err != nil {
		t.Fatalf("NewPairStats() error = %v", err)
	}

	got := PairStatsMarkdown(p)
	if strings.Contains(got, "correlate at") {
		t.Errorf("PairStatsMarkdown() renders a correlation for a constant series:\n%s", got)
	}
	if !strings.Contains(got, "| Covariance | 0.000000 |") {
		t.Errorf("PairStatsMarkdown() missing covariance row in:\n%s", got)
	}
}
