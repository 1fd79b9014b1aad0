package tradelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// this file handles the ledger exchange format: one JSON object per line,
// human readable, easy to diff and to merge into whatever store owns
// persistence. Field order is deterministic so that re-encoding an
// unchanged ledger is byte-stable.

// MarshalJSON implements the json.Marshaler interface for Trade, writing
// fields in a fixed order and omitting empty optional ones. Deposit is
// always written, "0" at rest.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Optional("userId", t.UserID)
	w.Append("positionType", string(t.Position))
	w.Append("openDate", t.OpenDate)
	w.Append("openTime", t.OpenTime)
	w.Optional("closeDate", t.CloseDate)
	w.Optional("closeTime", t.CloseTime)
	w.Optional("instrumentName", t.Instrument)
	w.Optional("symbolName", t.Symbol)
	w.Optional("entryPrice", t.EntryPrice)
	w.Optional("quantity", t.Quantity)
	w.Optional("totalCost", t.TotalCost)
	w.Optional("sellPrice", t.SellPrice)
	w.Optional("quantitySold", t.QuantitySold)
	w.Append("deposit", t.Deposit)
	w.Optional("result", t.Result)
	w.Optional("notes", t.Notes)
	w.Optional("rating", t.Rating)
	w.Optional("strategyId", t.StrategyID)
	w.Optional("appliedOpenRules", t.OpenRules)
	w.Optional("appliedCloseRules", t.CloseRules)
	return w.MarshalJSON()
}

// EncodeTrade writes a single trade as one JSONL line.
func EncodeTrade(w io.Writer, t Trade) error {
	if t.Deposit == "" {
		t.Deposit = "0"
	}
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("cannot marshal trade %q: %w", t.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write trade %q: %w", t.ID, err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in ledger order, one trade per line.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, t := range l.Trades() {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of trades and returns an ordered
// ledger. Lines are inserted, not appended, so a shuffled file still yields
// a correctly ordered ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var t Trade
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("cannot parse trade on line %d: %w", line, err)
		}
		if t.Deposit == "" {
			t.Deposit = "0"
		}
		ledger.Insert(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}
