package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog"
	"github.com/openjournal/tradelog/renderer"
)

// benchmarkCmd holds the flags for the 'benchmark' subcommand.
type benchmarkCmd struct {
	capital float64
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "compare realized capital against a 10% benchmark" }
func (*benchmarkCmd) Usage() string {
	return `tl benchmark [-capital <amount>]

  Displays the running-capital series next to a 10% annual compounding
  reference. Without -capital, the starting capital is derived from the
  deposits recorded on the trades.
`
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.capital, "capital", 0, "Starting capital; 0 derives it from trade deposits.")
}

func (c *benchmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot := ledger.Snapshot()
	capital := c.capital
	if capital == 0 {
		for _, t := range snapshot {
			capital += t.DepositValue()
		}
	}

	printMarkdown(renderer.BenchmarkMarkdown(tradelog.Compare(snapshot, capital), *currency))
	return subcommands.ExitSuccess
}
