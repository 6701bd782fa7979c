package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// corrCmd holds the flags for the 'corr' subcommand.
type corrCmd struct {
	name1, name2 string
	a, b         string
}

func (*corrCmd) Name() string     { return "corr" }
func (*corrCmd) Synopsis() string { return "measure how two return series move together" }
func (*corrCmd) Usage() string {
	return `fincalc corr -a <r0,r1,...> -b <r0,r1,...> [-name1 <name>] [-name2 <name>]

  Displays the covariance and the correlation of two aligned return
  series. The series must be equal length, entry i of both covering
  the same period. A constant series leaves the correlation undefined
  and the report then carries the covariance alone.

Usage Examples:
$ fincalc corr -name1 Fund -a 0.02,0.03,-0.01 -name2 Index -b 0.01,0.025,-0.005
`
}

func (c *corrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name1, "name1", "A", "Name of the first series in the report.")
	f.StringVar(&c.a, "a", "", "First series, comma separated fractional returns.")
	f.StringVar(&c.name2, "name2", "B", "Name of the second series in the report.")
	f.StringVar(&c.b, "b", "", "Second series, comma separated fractional returns.")
}

func (c *corrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.a == "" || c.b == "" {
		fmt.Fprintln(os.Stderr, "Error: both -a and -b series are required")
		return subcommands.ExitUsageError
	}

	a, err := parseReturns(c.a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading -a: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := parseReturns(c.b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading -b: %v\n", err)
		return subcommands.ExitUsageError
	}

	pair, err := renderer.NewPairStats(c.name1, a, c.name2, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing statistics: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PairStatsMarkdown(pair))

	return subcommands.ExitSuccess
}
