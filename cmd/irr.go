package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// irrCmd holds the flags for the 'irr' subcommand.
type irrCmd struct {
	flows    seriesFlags
	currency string
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "solve the rate at which a cash flow series nets to zero" }
func (*irrCmd) Usage() string {
	return `fincalc irr -flows <f0,f1,...> [-cur <currency>]

  Solves the internal rate of return of a cash flow series, the
  discount rate at which its net present value is zero. The series
  must mix at least one positive and one negative flow. The solver
  searches rates between -99% and +1000%.

Usage Examples:
$ fincalc irr -flows=-1000,300,420,680
$ fincalc irr -file project.json -path $.flows
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	c.flows.setFlags(f, "flows", "Comma separated cash flows, the period 0 flow first. Use -flows=... when it is negative.")
	f.StringVar(&c.currency, "cur", "USD", "ISO 4217 currency code for the report.")
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := c.flows.series(parseFlows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading flows: %v\n", err)
		return subcommands.ExitUsageError
	}

	yield, err := renderer.NewYield(flows, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving rate: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderYield(yield))

	return subcommands.ExitSuccess
}
