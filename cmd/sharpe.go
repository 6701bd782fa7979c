package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// sharpeCmd holds the flags for the 'sharpe' subcommand.
type sharpeCmd struct {
	returns  string
	riskFree float64
}

func (*sharpeCmd) Name() string     { return "sharpe" }
func (*sharpeCmd) Synopsis() string { return "excess return per unit of volatility" }
func (*sharpeCmd) Usage() string {
	return `fincalc sharpe -returns <r0,r1,...> [-riskfree <rate>]

  Prints the Sharpe ratio of a return series: mean return in excess
  of the risk-free rate, divided by the standard deviation of the
  series. The bare number suits scripting; use 'capm' for the full
  risk report.

Usage Examples:
$ fincalc sharpe -returns 0.01,0.02,-0.01,0.03 -riskfree 0.005
`
}

func (c *sharpeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.returns, "returns", "", "Comma separated fractional returns (0.02 means +2%).")
	f.Float64Var(&c.riskFree, "riskfree", 0, "Risk-free rate per period, as a fraction.")
}

func (c *sharpeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.returns == "" {
		fmt.Fprintln(os.Stderr, "Error: -returns is required")
		return subcommands.ExitUsageError
	}
	returns, err := parseReturns(c.returns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading returns: %v\n", err)
		return subcommands.ExitUsageError
	}

	ratio, err := finance.SharpeRatio(returns, c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing Sharpe ratio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%.6f\n", ratio)

	return subcommands.ExitSuccess
}
