package tradelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImporter returns an importer with a fixed clock so synthetic ids are
// deterministic.
func testImporter() *Importer {
	imp := NewImporter()
	imp.now = func() time.Time { return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC) }
	return imp
}

const validCSV = `symbol,position_type,open_date,open_time,close_date,close_time,entry_price,exit_price,quantity,profit_loss,note
ESU5,long,2025-06-02,09:30,2025-06-02,10:15,5300.25,5310.25,1,500.00,scalp
MNQU5,short,2025-06-03,14:00,2025-06-04,,18900,18910,2,-4.00,
`

func TestParseCSV(t *testing.T) {
	res := testImporter().Parse(validCSV)
	require.Empty(t, res.Errors)
	require.Len(t, res.Trades, 2)
	assert.Equal(t, 0, res.SkippedRows)

	first := res.Trades[0]
	assert.Equal(t, "ESU5", first.Symbol)
	assert.Equal(t, Long, first.Position)
	assert.Equal(t, "E-mini S&P 500", first.Instrument)
	assert.Equal(t, "09:30", first.OpenTime)
	assert.Equal(t, "2025-06-02", first.CloseDate.String())
	assert.Equal(t, "5300.25", first.EntryPrice)
	assert.Equal(t, "5310.25", first.SellPrice)
	assert.Equal(t, "500", first.Result, "P/L must be rounded to integer text")
	assert.Equal(t, "0", first.Deposit)
	assert.Equal(t, "scalp", first.Notes)
	assert.NotEmpty(t, first.ID)

	second := res.Trades[1]
	assert.Equal(t, Short, second.Position)
	assert.Equal(t, "-4", second.Result, "trailing zeros must be dropped")
	assert.True(t, second.Closed(), "close date without close time is still closed")
}

func TestParseCSVMissingColumns(t *testing.T) {
	res := testImporter().Parse("symbol,position_type,open_date\nESU5,long,2025-06-02\n")
	assert.Empty(t, res.Trades)
	assert.Equal(t, 0, res.SkippedRows)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Missing required column: open_time", res.Errors[0])
}

func TestParseCSVRowErrors(t *testing.T) {
	content := `symbol,position_type,open_date,open_time,close_date,profit_loss
,long,2025-06-02,09:30,2025-06-02,10
ESU5,sideways,2025-06-02,09:30,2025-06-02,10
ESU5,long,not-a-date,09:30,2025-06-02,10
ESU5,long,2025-06-02,09:30,2025-06-05,25
`
	res := testImporter().Parse(content)
	require.Len(t, res.Trades, 1, "the one good row must survive its broken neighbours")
	assert.Equal(t, "25", res.Trades[0].Result)
	assert.Equal(t, 3, res.SkippedRows)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "row 1: missing required field symbol", res.Errors[0])
	assert.Contains(t, res.Errors[1], `row 2: unknown position type "sideways"`)
	assert.Contains(t, res.Errors[2], "row 3: invalid open_date")
}

func TestParseCSVSkipsOpenPositions(t *testing.T) {
	content := `symbol,position_type,open_date,open_time,close_date,close_time
ESU5,long,2025-06-02,09:30,,
`
	res := testImporter().Parse(content)
	assert.Empty(t, res.Trades)
	assert.Empty(t, res.Errors, "an open position is not an error")
	assert.Equal(t, 1, res.SkippedRows)
}

func TestParseCSVFallbackProfitColumn(t *testing.T) {
	content := `symbol,position_type,open_date,open_time,close_date,ftf_profit_loss
ESU5,long,2025-06-02,09:30,2025-06-02,42.70
`
	res := testImporter().Parse(content)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, "43", res.Trades[0].Result)
}

func TestNormalizeResult(t *testing.T) {
	cases := map[string]string{
		"-4.00":   "-4",
		"500.00":  "500",
		"42.70":   "43",
		"-0.2":    "0",
		"":        "0",
		"garbage": "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeResult(in), "normalizeResult(%q)", in)
	}
}

func TestImportBatchDedup(t *testing.T) {
	res := testImporter().Parse(validCSV)
	require.Len(t, res.Trades, 2)

	l := NewLedger()
	first := l.ImportBatch(res.Trades, l.DedupKeys())
	assert.Equal(t, ImportResult{Imported: 2}, first)
	assert.Equal(t, 2, l.Len())

	// importing the same file again must be a no-op
	again := testImporter().Parse(validCSV)
	second := l.ImportBatch(again.Trades, l.DedupKeys())
	assert.Equal(t, ImportResult{Skipped: 2}, second)
	assert.Equal(t, 2, l.Len())
}

func TestImportBatchDedupWithinBatch(t *testing.T) {
	res := testImporter().Parse(validCSV)
	require.Len(t, res.Trades, 2)
	batch := append(res.Trades, res.Trades...) // same rows twice in one batch

	l := NewLedger()
	got := l.ImportBatch(batch, nil)
	assert.Equal(t, ImportResult{Imported: 2, Skipped: 2}, got)
}

func TestSyntheticIDStableHashPrefix(t *testing.T) {
	imp := testImporter()
	a := imp.syntheticID("ESU5", "2025-06-02", "09:30", Long)
	b := imp.syntheticID("ESU5", "2025-06-02", "09:30", Long)
	assert.Equal(t, a, b, "same row identity and clock must hash identically")
	c := imp.syntheticID("NQU5", "2025-06-02", "09:30", Long)
	assert.NotEqual(t, a, c)
}
