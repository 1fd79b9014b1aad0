package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog"
	"github.com/openjournal/tradelog/renderer"
)

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	month string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display one month of daily results" }
func (*calendarCmd) Usage() string {
	return `tl calendar [-m <month-year>]

  Displays the daily result buckets of one month, with per-day win/loss
  counts. The month is given as "month-year", e.g. "7-2025"; default is the
  current month.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", `Month to display, as "month-year".`)
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var year int
	var month time.Month
	if c.month == "" {
		now := tradelog.Today()
		year, month = now.Year(), now.Month()
	} else {
		var m int
		if _, err := fmt.Sscanf(c.month, "%d-%d", &m, &year); err != nil || m < 1 || m > 12 {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q, want e.g. \"7-2025\"\n", c.month)
			return subcommands.ExitUsageError
		}
		month = time.Month(m)
	}

	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot := ledger.Snapshot()
	buckets := tradelog.Rebuild(snapshot)
	counts := tradelog.RebuildCounts(snapshot)
	printMarkdown(renderer.CalendarMarkdown(year, month, buckets, counts, *currency))
	return subcommands.ExitSuccess
}
