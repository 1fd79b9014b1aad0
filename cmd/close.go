package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog"
)

// closeCmd holds the flags for the 'close' subcommand.
type closeCmd struct {
	id       string
	date     string
	clock    string
	result   string
	price    string
	quantity string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close an open position" }
func (*closeCmd) Usage() string {
	return `tl close -id <trade> -result <p/l> [-d <date>] [-t <time>] [flags]

  Records the close of an open position and moves it to its ordered place
  among the closed trades.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the trade to close.")
	f.StringVar(&c.date, "d", tradelog.Today().String(), "Close date.")
	f.StringVar(&c.clock, "t", "", "Close time of day, HH:MM.")
	f.StringVar(&c.result, "result", "", "Signed realized profit/loss.")
	f.StringVar(&c.price, "price", "", "Sell price.")
	f.StringVar(&c.quantity, "q", "", "Quantity sold.")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.result == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -result are required")
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

	trade, ok := ledger.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no trade %q in ledger\n", c.id)
		return subcommands.ExitFailure
	}
	trade.CloseDate = on
	trade.CloseTime = c.clock
	trade.Result = c.result
	trade.SellPrice = c.price
	trade.QuantitySold = c.quantity

	// The close date changed, so the trade must move to its ordered place.
	if err := ledger.Reinsert(c.id, trade); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Closed %s with result %s\n", trade.Symbol, trade.Result)
	return subcommands.ExitSuccess
}
