package renderer

import (
	"github.com/etnz/finance"
)

// Discounting is a net present value report: a cash flow series
// discounted line by line at a single rate.
type Discounting struct {
	// Rate is the discount rate per period.
	Rate Rate `json:"rate"`
	// Currency is the reporting currency for all flows.
	Currency string `json:"currency,omitempty"`
	// Flows lists every cash flow with its discounted value.
	Flows []FlowLine `json:"flows"`
	// Net is the sum of the discounted flows.
	Net Money `json:"net"`
}

// FlowLine is a single cash flow in a discounting report.
type FlowLine struct {
	// Period is the flow's offset from today, 0 is the initial flow.
	Period int `json:"period"`
	// Amount is the undiscounted cash flow.
	Amount Money `json:"amount"`
	// Present is the flow discounted back to period 0.
	Present Money `json:"present"`
}

// NewDiscounting builds a Discounting report for the given rate and
// flow series. Flow i is treated as occurring at the end of period i.
func NewDiscounting(rate float64, flows []float64, currency string) (*Discounting, error) {
	net, err := finance.NetPresentValue(rate, flows)
	if err != nil {
		return nil, err
	}

	d := &Discounting{
		Rate:     Rate(rate),
		Currency: currency,
		Flows:    make([]FlowLine, 0, len(flows)),
		Net:      MoneyOf(net, currency),
	}
	for i, flow := range flows {
		pv, err := finance.PresentValue(flow, rate, i)
		if err != nil {
			return nil, err
		}
		d.Flows = append(d.Flows, FlowLine{
			Period:  i,
			Amount:  MoneyOf(flow, currency),
			Present: MoneyOf(pv, currency),
		})
	}
	return d, nil
}
