package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// blendCmd holds the flags for the 'blend' subcommand.
type blendCmd struct {
	w1, w2 float64
	r1, r2 string
}

func (*blendCmd) Name() string     { return "blend" }
func (*blendCmd) Synopsis() string { return "combine two assets into a single allocation" }
func (*blendCmd) Usage() string {
	return `fincalc blend -w1 <weight> -r1 <r0,r1,...> -w2 <weight> -r2 <r0,r1,...>

  Displays the expected return, variance and volatility of a two
  asset allocation. Weights are not clamped: a weight above 1 models
  leverage, a negative weight a short position. The variance needs
  the covariance of the two series, so the return histories must be
  equal length and aligned period by period.

Usage Examples:
$ fincalc blend -w1 0.6 -r1 0.02,0.03,-0.01 -w2 0.4 -r2 0.01,0.025,-0.005
`
}

func (c *blendCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.w1, "w1", 0.5, "Weight of the first asset.")
	f.StringVar(&c.r1, "r1", "", "Return history of the first asset, comma separated fractions.")
	f.Float64Var(&c.w2, "w2", 0.5, "Weight of the second asset.")
	f.StringVar(&c.r2, "r2", "", "Return history of the second asset, comma separated fractions.")
}

func (c *blendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.r1 == "" || c.r2 == "" {
		fmt.Fprintln(os.Stderr, "Error: both -r1 and -r2 histories are required")
		return subcommands.ExitUsageError
	}

	returns1, err := parseReturns(c.r1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading -r1: %v\n", err)
		return subcommands.ExitUsageError
	}
	returns2, err := parseReturns(c.r2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading -r2: %v\n", err)
		return subcommands.ExitUsageError
	}

	allocation, err := renderer.NewAllocation(c.w1, returns1, c.w2, returns2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderAllocation(allocation))

	return subcommands.ExitSuccess
}
