package tradelog

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Position is the direction of a trade.
type Position string

const (
	Long  Position = "long"
	Short Position = "short"
)

// ParsePosition parses a position direction. Broker exports use a few
// synonyms, all folded here.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "buy":
		return Long, nil
	case "short", "sell":
		return Short, nil
	default:
		return "", fmt.Errorf("unknown position type %q", s)
	}
}

// RuleSnapshot is a copy of a strategy rule as it was when applied to a
// trade. It is a value copy, never a live reference, so later edits to the
// strategy do not retroactively change historical trades.
type RuleSnapshot struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Trade represents one position, open or closed.
//
// Numeric fields are stored as decimal text to avoid floating precision loss
// on the wire; they are parsed to numbers only inside computations, and an
// unparsable or empty string always counts as zero, never as an error.
type Trade struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId,omitempty"`
	Position Position `json:"positionType"`

	OpenDate Date   `json:"openDate"`
	OpenTime string `json:"openTime"` // local time of day, ClockFormat

	// A trade is closed iff CloseDate is set; open otherwise.
	CloseDate Date   `json:"closeDate,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`

	Instrument string `json:"instrumentName,omitempty"`
	Symbol     string `json:"symbolName,omitempty"`

	EntryPrice   string `json:"entryPrice,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
	TotalCost    string `json:"totalCost,omitempty"`
	SellPrice    string `json:"sellPrice,omitempty"`
	QuantitySold string `json:"quantitySold,omitempty"`

	// Deposit is the capital allocated to the trade. It is never empty at
	// rest (defaults to "0") to keep percentage-of-capital math total.
	Deposit string `json:"deposit"`

	// Result is the signed realized profit/loss, set once the trade closes.
	Result string `json:"result,omitempty"`

	Notes  string `json:"notes,omitempty"`
	Rating int    `json:"rating,omitempty"` // 0..5

	// StrategyID is a weak reference, lookup only. The trade never owns the
	// strategy.
	StrategyID string         `json:"strategyId,omitempty"`
	OpenRules  []RuleSnapshot `json:"appliedOpenRules,omitempty"`
	CloseRules []RuleSnapshot `json:"appliedCloseRules,omitempty"`
}

// NewTradeID returns a fresh unique id for a directly entered trade.
// Imported trades keep the importer's synthetic hash ids instead.
func NewTradeID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// Closed reports whether the trade has been closed out.
func (t Trade) Closed() bool { return !t.CloseDate.IsZero() }

// ResultValue returns the realized result as a number, zero when missing or
// unparsable.
func (t Trade) ResultValue() float64 { return num(t.Result) }

// DepositValue returns the allocated capital as a number.
func (t Trade) DepositValue() float64 { return num(t.Deposit) }

// openStamp is the timestamp the position was opened, at UTC.
func (t Trade) openStamp() time.Time { return t.OpenDate.At(t.OpenTime) }

// closeStamp is the ordering key for closed trades: close date plus close
// time of day when it parses, midnight otherwise. Zero for open trades.
func (t Trade) closeStamp() time.Time {
	if !t.Closed() {
		return time.Time{}
	}
	return t.CloseDate.At(t.CloseTime)
}

// DedupKey is the composite key used to detect re-imported duplicates.
func (t Trade) DedupKey() string {
	return strings.Join([]string{t.Symbol, t.OpenDate.String(), t.OpenTime, string(t.Position)}, "|")
}

// dec parses a decimal-as-text field, returning zero on empty or garbage
// input. All engine arithmetic funnels through here so that a malformed
// field contributes 0 consistently across every statistic.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// num is dec collapsed to a float for statistics that are inherently
// approximate (gauges, averages, curves).
func num(s string) float64 { return dec(s).InexactFloat64() }

// parsable reports whether s holds a usable decimal number.
func parsable(s string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}
