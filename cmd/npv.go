package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// npvCmd holds the flags for the 'npv' subcommand.
type npvCmd struct {
	rate     float64
	flows    seriesFlags
	currency string
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "discount a cash flow series at a constant rate" }
func (*npvCmd) Usage() string {
	return `fincalc npv -rate <rate> -flows <f0,f1,...> [-cur <currency>]

  Discounts a cash flow series at a constant rate per period. The flow
  at period 0 is not discounted. The report lists every flow next to
  its present value and ends with the net present value of the series.

Usage Examples:
$ fincalc npv -rate 0.10 -flows=-1000,300,420,680
$ fincalc npv -rate 0.08 -file project.json -path $.flows
`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 0, "Discount rate per period, as a fraction (0.10 means 10%).")
	c.flows.setFlags(f, "flows", "Comma separated cash flows, the period 0 flow first. Use -flows=... when it is negative.")
	f.StringVar(&c.currency, "cur", "USD", "ISO 4217 currency code for the report.")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := c.flows.series(parseFlows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading flows: %v\n", err)
		return subcommands.ExitUsageError
	}

	discounting, err := renderer.NewDiscounting(c.rate, flows, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discounting flows: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderDiscounting(discounting))

	return subcommands.ExitSuccess
}
