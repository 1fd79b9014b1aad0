package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tl fmt

  Reads the ledger file, re-sorts closed trades by close date, and writes it
  back in canonical JSONL form with deterministic field order.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Decoding inserts every line at its ordered position, so a round trip
	// is the canonical form.
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := encodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %d trades\n", ledger.Len())
	return subcommands.ExitSuccess
}
