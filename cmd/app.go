// Package cmd implements the CLI application to run financial computations.
package cmd

import (
	"github.com/etnz/finance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Register the subcommands.
// A main package will call Register() to install the commands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&futureValueCmd{}, "time value")
	c.Register(&presentValueCmd{}, "time value")
	c.Register(&npvCmd{}, "time value")
	c.Register(&irrCmd{}, "time value")

	c.Register(&statsCmd{}, "statistics")
	c.Register(&corrCmd{}, "statistics")

	c.Register(&blendCmd{}, "portfolio")

	c.Register(&sharpeCmd{}, "risk")
	c.Register(&betaCmd{}, "risk")
	c.Register(&capmCmd{}, "risk")

	c.Register(&topicCmd{}, "documentation")
	c.Register(c.HelpCommand(), "documentation")
	c.Register(c.FlagsCommand(), "documentation")
}

// Completion describes the command line for shell completion. It is
// consulted only when the shell asks for completions, through the
// COMP_LINE environment variable.
func Completion() *complete.Command {
	currencies := predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}
	jsonFiles := predict.Files("*.json")

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"fv": {Flags: map[string]complete.Predictor{
				"amount": predict.Something, "rate": predict.Something,
				"periods": predict.Something, "cur": currencies,
			}},
			"pv": {Flags: map[string]complete.Predictor{
				"amount": predict.Something, "rate": predict.Something,
				"periods": predict.Something, "cur": currencies,
			}},
			"npv": {Flags: map[string]complete.Predictor{
				"rate": predict.Something, "flows": predict.Something,
				"file": jsonFiles, "path": predict.Something, "cur": currencies,
			}},
			"irr": {Flags: map[string]complete.Predictor{
				"flows": predict.Something,
				"file":  jsonFiles, "path": predict.Something, "cur": currencies,
			}},
			"stats": {Flags: map[string]complete.Predictor{
				"name": predict.Something, "returns": predict.Something,
				"file": jsonFiles, "path": predict.Something,
			}},
			"corr": {Flags: map[string]complete.Predictor{
				"name1": predict.Something, "a": predict.Something,
				"name2": predict.Something, "b": predict.Something,
			}},
			"blend": {Flags: map[string]complete.Predictor{
				"w1": predict.Something, "r1": predict.Something,
				"w2": predict.Something, "r2": predict.Something,
			}},
			"sharpe": {Flags: map[string]complete.Predictor{
				"returns": predict.Something, "riskfree": predict.Something,
			}},
			"beta": {Flags: map[string]complete.Predictor{
				"asset": predict.Something, "market": predict.Something,
			}},
			"capm": {Flags: map[string]complete.Predictor{
				"name": predict.Something, "asset": predict.Something,
				"market": predict.Something, "riskfree": predict.Something,
			}},
			"topic": {Args: predict.Set(append(docs.All(), "readme", "*"))},
			"help":  {Args: predict.Something},
			"flags": {Args: predict.Something},
		},
	}
}
