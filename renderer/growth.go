package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/finance"
	md "github.com/nao1215/markdown"
)

// Growth is a compound interest schedule: the value of a single
// amount at every period between today and the horizon.
type Growth struct {
	// Title distinguishes the future value and present value reports.
	Title string `json:"title"`
	// Rate is the interest rate per period.
	Rate Rate `json:"rate"`
	// Periods is the compounding horizon.
	Periods int `json:"periods"`
	// Amount is the input amount.
	Amount Money `json:"amount"`
	// Result is the computed value at the other end of the horizon.
	Result Money `json:"result"`
	// Rows is the period by period schedule.
	Rows []GrowthRow `json:"rows"`
}

// GrowthRow is the value of the schedule at one period.
type GrowthRow struct {
	Period int   `json:"period"`
	Value  Money `json:"value"`
}

// NewFutureGrowth builds the compounding schedule of an amount
// invested today: row 0 is the amount, the last row its future value.
func NewFutureGrowth(amount, rate float64, periods int, currency string) (*Growth, error) {
	result, err := finance.FutureValue(amount, rate, periods)
	if err != nil {
		return nil, err
	}

	g := &Growth{
		Title:   "Future Value",
		Rate:    Rate(rate),
		Periods: periods,
		Amount:  MoneyOf(amount, currency),
		Result:  MoneyOf(result, currency),
	}
	if err := g.fill(amount, rate, currency); err != nil {
		return nil, err
	}
	return g, nil
}

// NewPresentGrowth builds the schedule of an amount due at the
// horizon: row 0 is its present value, the last row the amount.
func NewPresentGrowth(amount, rate float64, periods int, currency string) (*Growth, error) {
	result, err := finance.PresentValue(amount, rate, periods)
	if err != nil {
		return nil, err
	}

	g := &Growth{
		Title:   "Present Value",
		Rate:    Rate(rate),
		Periods: periods,
		Amount:  MoneyOf(amount, currency),
		Result:  MoneyOf(result, currency),
	}
	if err := g.fill(result, rate, currency); err != nil {
		return nil, err
	}
	return g, nil
}

// fill populates the schedule by compounding start forward from
// period 0 to the horizon.
func (g *Growth) fill(start, rate float64, currency string) error {
	g.Rows = make([]GrowthRow, 0, g.Periods+1)
	for k := 0; k <= g.Periods; k++ {
		v, err := finance.FutureValue(start, rate, k)
		if err != nil {
			return err
		}
		g.Rows = append(g.Rows, GrowthRow{Period: k, Value: MoneyOf(v, currency)})
	}
	return nil
}

func GrowthMarkdown(g *Growth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(g.Title)
	doc.PlainText(fmt.Sprintf("%s per period over %d periods.", g.Rate, g.Periods))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Period", "Value"},
		Rows:   [][]string{},
	}
	for _, row := range g.Rows {
		table.Rows = append(table.Rows, []string{strconv.Itoa(row.Period), row.Value.String()})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Result: %s", md.Bold(g.Result.String())))

	return doc.String()
}
