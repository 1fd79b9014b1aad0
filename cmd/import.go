package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file      string
	overrides string
	catalog   string
	userID    string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import closed trades from a broker CSV export" }
func (*importCmd) Usage() string {
	return `tl import -f <file.csv> [-overrides <prefixes.yaml>] [-catalog <catalog.json>]

  Parses a broker CSV export, normalizes each closed trade, skips duplicates
  already present in the ledger, and reports per-row errors without aborting
  the batch. See 'tl topic importing' for the file format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV export file to import.")
	f.StringVar(&c.overrides, "overrides", "", "YAML file of symbol prefix to instrument name overrides.")
	f.StringVar(&c.catalog, "catalog", "", "Broker instrument catalog JSON file.")
	f.StringVar(&c.userID, "user", "", "Owner id stamped on imported trades.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <file.csv> is required")
		return subcommands.ExitUsageError
	}
	content, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	importer := tradelog.NewImporter()
	importer.UserID = c.userID
	if c.catalog != "" {
		table, err := loadCatalogFile(c.catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog %q: %v\n", c.catalog, err)
			return subcommands.ExitFailure
		}
		importer.Prefixes.Merge(table)
	}
	if c.overrides != "" {
		table, err := loadOverridesFile(c.overrides)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading overrides %q: %v\n", c.overrides, err)
			return subcommands.ExitFailure
		}
		importer.Prefixes.Merge(table)
	}

	parsed := importer.Parse(string(content))

	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	res := ledger.ImportBatch(parsed.Trades, ledger.DedupKeys())
	if err := encodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(importReport(parsed, res))
	return subcommands.ExitSuccess
}

// importReport summarizes a parse + import pass as markdown.
func importReport(parsed *tradelog.ParseResult, res tradelog.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Import\n\n")
	fmt.Fprintf(&b, "* imported: %d\n", res.Imported)
	fmt.Fprintf(&b, "* duplicates skipped: %d\n", res.Skipped)
	fmt.Fprintf(&b, "* rows skipped while parsing: %d\n", parsed.SkippedRows)
	if len(parsed.Errors) > 0 {
		fmt.Fprintf(&b, "\n## Errors\n\n")
		for _, e := range parsed.Errors {
			fmt.Fprintf(&b, "* %s\n", e)
		}
	}
	return b.String()
}

func loadCatalogFile(path string) (tradelog.PrefixTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tradelog.LoadCatalog(f)
}

func loadOverridesFile(path string) (tradelog.PrefixTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tradelog.LoadPrefixOverrides(f)
}
