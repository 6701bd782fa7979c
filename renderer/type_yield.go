package renderer

import (
	"github.com/etnz/finance"
)

// Yield is an internal rate of return report: the solved rate plus
// the flow series discounted at that rate, so the table shows the
// flows netting out to zero.
type Yield struct {
	// Rate is the internal rate of return per period.
	Rate Rate `json:"rate"`
	// Currency is the reporting currency for all flows.
	Currency string `json:"currency,omitempty"`
	// Flows lists every cash flow discounted at Rate.
	Flows []FlowLine `json:"flows"`
}

// NewYield solves the internal rate of return of the flow series and
// builds the report around it.
func NewYield(flows []float64, currency string) (*Yield, error) {
	rate, err := finance.InternalRateOfReturn(flows)
	if err != nil {
		return nil, err
	}

	y := &Yield{
		Rate:     Rate(rate),
		Currency: currency,
		Flows:    make([]FlowLine, 0, len(flows)),
	}
	for i, flow := range flows {
		pv, err := finance.PresentValue(flow, rate, i)
		if err != nil {
			return nil, err
		}
		y.Flows = append(y.Flows, FlowLine{
			Period:  i,
			Amount:  MoneyOf(flow, currency),
			Present: MoneyOf(pv, currency),
		})
	}
	return y, nil
}
