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

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the trading statistics page" }
func (*statsCmd) Usage() string {
	return `tl stats

  Computes success gauges, activity averages, streaks and instrument
  rankings from the current ledger.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := tradelog.ComputeStats(ledger.Snapshot())
	printMarkdown(renderer.StatsMarkdown(stats))
	return subcommands.ExitSuccess
}
