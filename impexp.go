package tradelog

import (
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io"
	"strconv"
	"strings"
	"time"
)

// this file contains the broker CSV ingestion pipeline.
// Parsing is pure text processing: one bad row never aborts the batch, and
// errors come back as values, never as panics.

// requiredColumns must all be present in the header; a file missing any of
// them is rejected without a partial parse attempt.
var requiredColumns = []string{"symbol", "position_type", "open_date", "open_time"}

// ParseResult is the outcome of parsing one CSV export.
type ParseResult struct {
	Trades      []Trade
	Errors      []string
	SkippedRows int
}

// ImportResult is the outcome of folding parsed trades into a ledger.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []string
}

// Importer parses broker CSV exports into normalized trades.
type Importer struct {
	Prefixes PrefixTable
	UserID   string

	now func() time.Time // test hook for synthetic ids
}

// NewImporter returns an importer with the built-in prefix table.
func NewImporter() *Importer {
	return &Importer{Prefixes: DefaultPrefixes(), now: time.Now}
}

// ParseCSV parses a broker CSV export with the default importer.
func ParseCSV(content string) *ParseResult {
	return NewImporter().Parse(content)
}

// Parse reads a header row plus data rows, comma-separated with quoted
// fields supported, and returns normalized trades along with per-row errors
// and the count of skipped rows. Row numbers in errors are 1-based over the
// data rows.
//
// Only closed trades are ingested: a row lacking both close date and close
// time is skipped silently (it counts toward SkippedRows but is not an
// error).
func (imp *Importer) Parse(content string) *ParseResult {
	res := &ParseResult{}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("cannot read header row: %v", err))
		return res
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		for _, name := range missing {
			res.Errors = append(res.Errors, fmt.Sprintf("Missing required column: %s", name))
		}
		return res
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for n := 1; ; n++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", n, err))
			res.SkippedRows++
			continue
		}

		symbol := field(row, "symbol")
		positionText := field(row, "position_type")
		openDateText := field(row, "open_date")
		openTimeText := field(row, "open_time")

		if bad := firstEmpty(map[string]string{
			"symbol":        symbol,
			"position_type": positionText,
			"open_date":     openDateText,
			"open_time":     openTimeText,
		}); bad != "" {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: missing required field %s", n, bad))
			res.SkippedRows++
			continue
		}

		closeDateText := field(row, "close_date")
		closeTimeText := field(row, "close_time")
		if closeDateText == "" && closeTimeText == "" {
			// Open position: the importer only ingests closed trades.
			res.SkippedRows++
			continue
		}

		position, err := ParsePosition(positionText)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", n, err))
			res.SkippedRows++
			continue
		}
		openDate, err := ParseDate(openDateText)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid open_date: %v", n, err))
			res.SkippedRows++
			continue
		}
		closeDate, err := ParseDate(closeDateText)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid close_date: %v", n, err))
			res.SkippedRows++
			continue
		}

		pl := field(row, "profit_loss")
		if pl == "" {
			pl = field(row, "ftf_profit_loss")
		}

		res.Trades = append(res.Trades, Trade{
			ID:         imp.syntheticID(symbol, openDateText, openTimeText, position),
			UserID:     imp.UserID,
			Position:   position,
			OpenDate:   openDate,
			OpenTime:   openTimeText,
			CloseDate:  closeDate,
			CloseTime:  closeTimeText,
			Symbol:     symbol,
			Instrument: imp.Prefixes.Instrument(symbol),
			EntryPrice: field(row, "entry_price"),
			SellPrice:  field(row, "exit_price"),
			Quantity:   field(row, "quantity"),
			Deposit:    "0",
			Result:     normalizeResult(pl),
			Notes:      field(row, "note"),
		})
	}
	return res
}

// firstEmpty returns the name of the first required field with an empty
// value, probing in requiredColumns order for stable error messages.
func firstEmpty(fields map[string]string) string {
	for _, name := range requiredColumns {
		if fields[name] == "" {
			return name
		}
	}
	return ""
}

// syntheticID derives a stable id from the row identity, concatenated with
// the ingestion timestamp so that visually identical rows in one batch still
// get distinct ids.
func (imp *Importer) syntheticID(symbol, openDate, openTime string, position Position) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s", symbol, openDate, openTime, position)
	return fmt.Sprintf("%x-%s", h.Sum64(), strconv.FormatInt(imp.now().UnixNano(), 36))
}

// normalizeResult rounds a P/L decimal string to the nearest integer and
// re-serializes it: "-4.00" becomes "-4". This lossy normalization is the
// journal's historical on-disk convention and must stay byte-compatible.
func normalizeResult(s string) string {
	if !parsable(s) {
		return "0"
	}
	return dec(s).Round(0).String()
}

// ImportBatch inserts parsed trades into the ledger, skipping duplicates.
//
// The dedup key is symbol|openDate|openTime|positionType. existing holds the
// keys of already persisted trades and is extended as the batch progresses,
// so duplicate rows inside one file cannot both be imported. Duplicates are
// counted as skipped, not reported as errors.
func (l *Ledger) ImportBatch(trades []Trade, existing map[string]struct{}) ImportResult {
	if existing == nil {
		existing = make(map[string]struct{})
	}
	var res ImportResult
	for _, t := range trades {
		key := t.DedupKey()
		if _, dup := existing[key]; dup {
			res.Skipped++
			continue
		}
		l.Insert(t)
		existing[key] = struct{}{}
		res.Imported++
	}
	return res
}
