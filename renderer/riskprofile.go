package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finance"
	md "github.com/nao1215/markdown"
)

// RiskProfile relates one asset's return series to the market:
// volatility, risk-adjusted return, market sensitivity, and the
// capital asset pricing model's fair expected return.
type RiskProfile struct {
	// Name labels the asset in the report.
	Name string `json:"name,omitempty"`
	// RiskFree is the risk-free rate per period.
	RiskFree Rate `json:"riskFree"`
	// Mean is the asset's mean return per period.
	Mean Rate `json:"mean"`
	// StdDev is the asset's sample standard deviation.
	StdDev Rate `json:"stdDev"`
	// Sharpe is the excess return per unit of volatility.
	Sharpe float64 `json:"sharpe"`
	// Beta is the sensitivity to market returns.
	Beta float64 `json:"beta"`
	// CAPM is the model's expected return given Beta.
	CAPM Rate `json:"capm"`
}

// NewRiskProfile computes the risk profile of an asset against its
// market. Both series must be equal length and index-aligned.
func NewRiskProfile(name string, asset, market []float64, riskFree float64) (*RiskProfile, error) {
	mean, err := finance.MeanReturn(asset)
	if err != nil {
		return nil, err
	}
	sd, err := finance.StdDev(asset)
	if err != nil {
		return nil, err
	}
	sharpe, err := finance.SharpeRatio(asset, riskFree)
	if err != nil {
		return nil, err
	}
	beta, err := finance.Beta(asset, market)
	if err != nil {
		return nil, err
	}
	capm, err := finance.CAPMExpectedReturn(riskFree, asset, market)
	if err != nil {
		return nil, err
	}

	return &RiskProfile{
		Name:     name,
		RiskFree: Rate(riskFree),
		Mean:     Rate(mean),
		StdDev:   Rate(sd),
		Sharpe:   sharpe,
		Beta:     beta,
		CAPM:     Rate(capm),
	}, nil
}

func RiskProfileMarkdown(r *RiskProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := r.Name
	if name == "" {
		name = "Asset"
	}
	doc.H1(fmt.Sprintf("Risk Profile of %s", name))
	doc.PlainText(fmt.Sprintf("Risk-free rate: %s per period.", r.RiskFree))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Mean Return", r.Mean.SignedString()},
			{"Volatility", r.StdDev.String()},
			{"Sharpe Ratio", fmt.Sprintf("%.4f", r.Sharpe)},
			{"Beta", fmt.Sprintf("%.4f", r.Beta)},
			{"CAPM Expected Return", r.CAPM.SignedString()},
		},
	})

	return doc.String()
}
