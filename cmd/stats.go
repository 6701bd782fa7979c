package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	name    string
	returns seriesFlags
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "describe a return series" }
func (*statsCmd) Usage() string {
	return `fincalc stats [-name <name>] -returns <r0,r1,...>

  Displays the summary statistics of a return series: observation
  count, mean return, variance and standard deviation. Variance and
  standard deviation use the sample convention, dividing by n-1, so
  at least two observations are required.

Usage Examples:
$ fincalc stats -name Fund -returns 0.01,0.02,-0.01,0.03
$ fincalc stats -file fund.json -path $.returns
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the series in the report.")
	c.returns.setFlags(f, "returns", "Comma separated fractional returns (0.02 means +2%).")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	returns, err := c.returns.series(parseReturns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading returns: %v\n", err)
		return subcommands.ExitUsageError
	}

	stats, err := renderer.NewSeriesStats(c.name, returns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing statistics: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SeriesStatsMarkdown(stats))

	return subcommands.ExitSuccess
}
