package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	symbol   string
	position string
	date     string
	clock    string
	deposit  string
	entry    string
	quantity string
	notes    string
	rating   int
	strategy string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "log a new open position" }
func (*logCmd) Usage() string {
	return `tl log -s <symbol> -p <long|short> [-d <date>] [-t <time>] [flags]

  Appends a new open position at the tail of the ledger.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol of the position.")
	f.StringVar(&c.position, "p", "long", "Position direction: long or short.")
	f.StringVar(&c.date, "d", tradelog.Today().String(), "Open date.")
	f.StringVar(&c.clock, "t", "", "Open time of day, HH:MM.")
	f.StringVar(&c.deposit, "deposit", "0", "Capital allocated to the trade.")
	f.StringVar(&c.entry, "entry", "", "Entry price.")
	f.StringVar(&c.quantity, "q", "", "Quantity.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
	f.IntVar(&c.rating, "rating", 0, "Self-rating, 0 to 5.")
	f.StringVar(&c.strategy, "strategy", "", "Strategy id this trade applies.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <symbol> is required")
		return subcommands.ExitUsageError
	}
	position, err := tradelog.ParsePosition(c.position)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := tradelog.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	trade := tradelog.Trade{
		ID:         tradelog.NewTradeID(),
		Position:   position,
		OpenDate:   on,
		OpenTime:   c.clock,
		Symbol:     c.symbol,
		Instrument: tradelog.DefaultPrefixes().Instrument(c.symbol),
		EntryPrice: c.entry,
		Quantity:   c.quantity,
		Deposit:    c.deposit,
		Notes:      c.notes,
		Rating:     c.rating,
		StrategyID: c.strategy,
	}
	ledger.Insert(trade)

	if err := encodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Logged %s %s as %s\n", trade.Position, trade.Symbol, trade.ID)
	return subcommands.ExitSuccess
}
