package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/finance"
	md "github.com/nao1215/markdown"
)

// SeriesStats summarizes a single return series.
type SeriesStats struct {
	// Name labels the series in the report.
	Name string `json:"name,omitempty"`
	// Count is the number of observations.
	Count int `json:"count"`
	// Mean is the arithmetic mean return per period.
	Mean Rate `json:"mean"`
	// Variance is the sample variance of the series.
	Variance float64 `json:"variance"`
	// StdDev is the sample standard deviation of the series.
	StdDev Rate `json:"stdDev"`
}

// NewSeriesStats computes the summary statistics of a return series.
// The series must hold at least two observations.
func NewSeriesStats(name string, returns []float64) (*SeriesStats, error) {
	mean, err := finance.MeanReturn(returns)
	if err != nil {
		return nil, err
	}
	variance, err := finance.Variance(returns)
	if err != nil {
		return nil, err
	}
	sd, err := finance.StdDev(returns)
	if err != nil {
		return nil, err
	}

	return &SeriesStats{
		Name:     name,
		Count:    len(returns),
		Mean:     Rate(mean),
		Variance: variance,
		StdDev:   Rate(sd),
	}, nil
}

func SeriesStatsMarkdown(s *SeriesStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := s.Name
	if name == "" {
		name = "Return Series"
	}
	doc.H1(fmt.Sprintf("Statistics for %s", name))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Observations", strconv.Itoa(s.Count)},
			{"Mean Return", s.Mean.SignedString()},
			{"Variance", fmt.Sprintf("%.6f", s.Variance)},
			{"Standard Deviation", s.StdDev.String()},
		},
	})

	return doc.String()
}

// PairStats summarizes the co-movement of two return series.
type PairStats struct {
	// Name1 and Name2 label the two series in the report.
	Name1 string `json:"name1,omitempty"`
	Name2 string `json:"name2,omitempty"`
	// Count is the number of aligned observations.
	Count int `json:"count"`
	// Covariance is the sample covariance of the two series.
	Covariance float64 `json:"covariance"`
	// Correlation is meaningful only when HasCorrelation is true.
	// It is undefined when either series is constant.
	Correlation    float64 `json:"correlation"`
	HasCorrelation bool    `json:"hasCorrelation"`
}

// NewPairStats computes the co-movement statistics of two aligned
// return series. A constant series leaves the correlation undefined
// rather than failing the whole report.
func NewPairStats(name1 string, a []float64, name2 string, b []float64) (*PairStats, error) {
	cov, err := finance.Covariance(a, b)
	if err != nil {
		return nil, err
	}

	p := &PairStats{
		Name1:      name1,
		Name2:      name2,
		Count:      len(a),
		Covariance: cov,
	}
	corr, err := finance.Correlation(a, b)
	switch {
	case err == nil:
		p.Correlation = corr
		p.HasCorrelation = true
	case errors.Is(err, finance.ErrZeroDenominator):
		// constant series, leave the correlation section out
	default:
		return nil, err
	}
	return p, nil
}

func PairStatsMarkdown(p *PairStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Co-movement of %s and %s\n\n", p.Name1, p.Name2)
	fmt.Fprintf(&b, "Aligned observations: %d\n\n", p.Count)
	fmt.Fprintln(&b, "| Measure | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Covariance | %.6f |\n", p.Covariance)

	ConditionalBlock(&b, func(w io.Writer) bool { return renderCorrelation(w, p) })

	return b.String()
}

func renderCorrelation(w io.Writer, p *PairStats) bool {
	if !p.HasCorrelation {
		return false
	}
	fmt.Fprintf(w, "\n%s and %s correlate at %+.4f on the -1 to +1 scale.\n", p.Name1, p.Name2, p.Correlation)
	return true
}
