package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// presentValueCmd holds the flags for the 'pv' subcommand.
type presentValueCmd struct {
	amount   float64
	rate     float64
	periods  int
	currency string
}

func (*presentValueCmd) Name() string     { return "pv" }
func (*presentValueCmd) Synopsis() string { return "discount a future amount back at a constant rate" }
func (*presentValueCmd) Usage() string {
	return `fincalc pv -amount <amount> -rate <rate> -periods <n> [-cur <currency>]

  Discounts a future amount at a constant rate per period and displays
  the growth schedule from its present value.

Usage Examples:
$ fincalc pv -amount 1000 -rate 0.08 -periods 5
`
}

func (c *presentValueCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Future amount to discount.")
	f.Float64Var(&c.rate, "rate", 0, "Rate per period, as a fraction (0.08 means 8%).")
	f.IntVar(&c.periods, "periods", 0, "Number of discounting periods.")
	f.StringVar(&c.currency, "cur", "USD", "ISO 4217 currency code for the report.")
}

func (c *presentValueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	growth, err := renderer.NewPresentGrowth(c.amount, c.rate, c.periods, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing present value: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GrowthMarkdown(growth))

	return subcommands.ExitSuccess
}
