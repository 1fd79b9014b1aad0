// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "ledger")
	c.Register(&logCmd{}, "ledger")
	c.Register(&closeCmd{}, "ledger")
	c.Register(&rmCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&statsCmd{}, "reports")
	c.Register(&calendarCmd{}, "reports")
	c.Register(&benchmarkCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "trades.jsonl", "Path to the ledger file containing trades (JSONL format)")
var currency = flag.String("currency", "USD", "Display currency for amounts")

// decodeLedgerFile loads the app ledger file, empty when it does not exist yet.
func decodeLedgerFile() (*tradelog.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return tradelog.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tradelog.DecodeLedger(f)
}

// encodeLedgerFile writes the whole ledger back in canonical form.
func encodeLedgerFile(l *tradelog.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tradelog.EncodeLedger(f, l)
}
