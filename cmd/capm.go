package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// capmCmd holds the flags for the 'capm' subcommand.
type capmCmd struct {
	name     string
	asset    string
	market   string
	riskFree float64
}

func (*capmCmd) Name() string     { return "capm" }
func (*capmCmd) Synopsis() string { return "display the full risk profile of an asset" }
func (*capmCmd) Usage() string {
	return `fincalc capm -asset <r0,r1,...> -market <r0,r1,...> [-riskfree <rate>] [-name <name>]

  Displays the risk profile of an asset against a market: mean
  return, volatility, Sharpe ratio, beta, and the expected return the
  capital asset pricing model assigns to that beta,
  riskfree + beta * (market mean - riskfree).

Usage Examples:
$ fincalc capm -name Fund -asset 0.02,0.03,-0.01 -market 0.01,0.025,-0.005 -riskfree 0.005
`
}

func (c *capmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the asset in the report.")
	f.StringVar(&c.asset, "asset", "", "Asset return series, comma separated fractions.")
	f.StringVar(&c.market, "market", "", "Market return series, comma separated fractions.")
	f.Float64Var(&c.riskFree, "riskfree", 0, "Risk-free rate per period, as a fraction.")
}

func (c *capmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.market == "" {
		fmt.Fprintln(os.Stderr, "Error: both -asset and -market series are required")
		return subcommands.ExitUsageError
	}

	asset, err := parseReturns(c.asset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading -asset: %v\n", err)
		return subcommands.ExitUsageError
	}
	market, err := parseReturns(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading -market: %v\n", err)
		return subcommands.ExitUsageError
	}

	profile, err := renderer.NewRiskProfile(c.name, asset, market, c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing risk profile: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RiskProfileMarkdown(profile))

	return subcommands.ExitSuccess
}
