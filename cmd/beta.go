package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// betaCmd holds the flags for the 'beta' subcommand.
type betaCmd struct {
	asset  string
	market string
}

func (*betaCmd) Name() string     { return "beta" }
func (*betaCmd) Synopsis() string { return "sensitivity of an asset to market moves" }
func (*betaCmd) Usage() string {
	return `fincalc beta -asset <r0,r1,...> -market <r0,r1,...>

  Prints the beta of an asset against a market: covariance of the two
  series over the variance of the market. A beta of 1 moves with the
  market, above 1 amplifies it, negative hedges it. The two series
  must be equal length and aligned period by period.

Usage Examples:
$ fincalc beta -asset 0.02,0.03,-0.01 -market 0.01,0.025,-0.005
`
}

func (c *betaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset return series, comma separated fractions.")
	f.StringVar(&c.market, "market", "", "Market return series, comma separated fractions.")
}

func (c *betaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	beta, err := finance.Beta(asset, market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing beta: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%.6f\n", beta)

	return subcommands.ExitSuccess
}
