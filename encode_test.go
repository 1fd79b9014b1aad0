package tradelog

import (
	"slices"
	"strings"
	"testing"
)

func TestEncodeTrade(t *testing.T) {
	tr := Trade{
		ID:        "t1",
		Position:  Long,
		OpenDate:  MustParseDate("2025-06-02"),
		OpenTime:  "09:30",
		CloseDate: MustParseDate("2025-06-02"),
		CloseTime: "10:15",
		Symbol:    "ESU5",
		Deposit:   "0",
		Result:    "500",
	}
	var sb strings.Builder
	if err := EncodeTrade(&sb, tr); err != nil {
		t.Fatal(err)
	}
	want := `{"id":"t1","positionType":"long","openDate":"2025-06-02","openTime":"09:30","closeDate":"2025-06-02","closeTime":"10:15","symbolName":"ESU5","deposit":"0","result":"500"}` + "\n"
	if got := sb.String(); got != want {
		t.Errorf("EncodeTrade:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeTradeDefaultsDeposit(t *testing.T) {
	tr := openTrade("ESU5", Long, "2025-06-02")
	tr.Deposit = ""
	var sb strings.Builder
	if err := EncodeTrade(&sb, tr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"deposit":"0"`) {
		t.Errorf("empty deposit must be written as \"0\": %s", sb.String())
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	l := FromTrades(
		closedTrade("ESU5", Long, "2025-01-02", "2025-01-05", "10"),
		closedTrade("NQU5", Short, "2025-01-03", "2025-01-04", "-5"),
		openTrade("CLF6", Long, "2025-01-01"),
	)

	var sb strings.Builder
	if err := EncodeLedger(&sb, l); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeLedger(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ledgerIDs(back), ledgerIDs(l)) {
		t.Errorf("round trip changed order: %v vs %v", ledgerIDs(back), ledgerIDs(l))
	}

	// re-encoding an unchanged ledger is byte-stable
	var again strings.Builder
	if err := EncodeLedger(&again, back); err != nil {
		t.Fatal(err)
	}
	if again.String() != sb.String() {
		t.Errorf("re-encoding is not byte-stable:\n%s\nvs\n%s", again.String(), sb.String())
	}
}

func TestDecodeLedgerSortsShuffledInput(t *testing.T) {
	// lines out of chronological order, plus a blank line
	content := `{"id":"b","positionType":"long","openDate":"2025-01-03","openTime":"09:30","closeDate":"2025-01-08","deposit":"0","result":"20"}

{"id":"a","positionType":"long","openDate":"2025-01-02","openTime":"09:30","closeDate":"2025-01-05","deposit":"0","result":"10"}
`
	l, err := DecodeLedger(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ledgerIDs(l), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("decoded order = %v, want %v", got, want)
	}
}

func TestDecodeLedgerBadLine(t *testing.T) {
	content := `{"id":"a","positionType":"long","openDate":"2025-01-02","openTime":"09:30","deposit":"0"}
{broken
`
	_, err := DecodeLedger(strings.NewReader(content))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("want a line-numbered parse error, got %v", err)
	}
}
