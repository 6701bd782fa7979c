package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// futureValueCmd holds the flags for the 'fv' subcommand.
type futureValueCmd struct {
	amount   float64
	rate     float64
	periods  int
	currency string
}

func (*futureValueCmd) Name() string     { return "fv" }
func (*futureValueCmd) Synopsis() string { return "compound an amount forward at a constant rate" }
func (*futureValueCmd) Usage() string {
	return `fincalc fv -amount <amount> -rate <rate> -periods <n> [-cur <currency>]

  Compounds an amount at a constant rate per period and displays the
  growth schedule up to the future value.

Usage Examples:
$ fincalc fv -amount 1000 -rate 0.05 -periods 3
`
}

func (c *futureValueCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to compound.")
	f.Float64Var(&c.rate, "rate", 0, "Rate per period, as a fraction (0.05 means 5%).")
	f.IntVar(&c.periods, "periods", 0, "Number of compounding periods.")
	f.StringVar(&c.currency, "cur", "USD", "ISO 4217 currency code for the report.")
}

func (c *futureValueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	growth, err := renderer.NewFutureGrowth(c.amount, c.rate, c.periods, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing future value: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GrowthMarkdown(growth))

	return subcommands.ExitSuccess
}
