package tradelog

import (
	"errors"
	"iter"
	"slices"
	"sort"
)

// ErrNotFound is returned by Ledger.Update when no trade carries the given
// id. Remove, by contrast, is an idempotent no-op on unknown ids: deleting
// something already gone is safe, editing it indicates a caller bug.
var ErrNotFound = errors.New("trade not found")

// Ledger is the ordered collection of all trade records for one owner.
//
// Closed trades form a single run sorted ascending by close timestamp; open
// trades (no close date) sit at the tail in arrival order. The ledger is a
// view owned by one session at a time; it performs no locking.
type Ledger struct {
	trades []Trade
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{trades: make([]Trade, 0)} }

// FromTrades builds a ledger from an unordered collection of trades.
func FromTrades(trades ...Trade) *Ledger {
	l := NewLedger()
	for _, t := range trades {
		l.Insert(t)
	}
	return l
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Insert adds a trade at its ordered position.
//
// Open trades are appended at the tail, O(1). Closed trades are placed at
// the leftmost index whose element orders at or after the new trade's close
// timestamp, O(log n) probe plus the slice shift; ties therefore resolve in
// insertion order. A probe landing on an open trade inserts before it, which
// keeps the closed run contiguous even when open trades are present.
func (l *Ledger) Insert(t Trade) {
	if !t.Closed() {
		l.trades = append(l.trades, t)
		return
	}
	ts := t.closeStamp()
	i := sort.Search(len(l.trades), func(i int) bool {
		x := l.trades[i]
		return !x.Closed() || !x.closeStamp().Before(ts)
	})
	l.trades = slices.Insert(l.trades, i, t)
}

// Update replaces the trade with the same id in place. It does not re-sort:
// a caller that edits the close date and needs strict ordering must use
// Reinsert instead. Returns ErrNotFound when the id is unknown.
func (l *Ledger) Update(id string, t Trade) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	l.trades[i] = t
	return nil
}

// Reinsert removes the trade with the given id and inserts the replacement
// at its ordered position. It is the remove+insert form of Update for edits
// that change the close date.
func (l *Ledger) Reinsert(id string, t Trade) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	l.trades = slices.Delete(l.trades, i, i+1)
	l.Insert(t)
	return nil
}

// Remove deletes the trade with the given id. Unknown ids are a no-op.
func (l *Ledger) Remove(id string) {
	if i := l.indexOf(id); i >= 0 {
		l.trades = slices.Delete(l.trades, i, i+1)
	}
}

// Get returns the trade with the given id.
func (l *Ledger) Get(id string) (Trade, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.trades[i], true
	}
	return Trade{}, false
}

func (l *Ledger) indexOf(id string) int {
	return slices.IndexFunc(l.trades, func(t Trade) bool { return t.ID == id })
}

// Trades returns an iterator over all trades in ledger order.
func (l *Ledger) Trades() iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Closed returns an iterator over closed trades, ascending by close
// timestamp.
func (l *Ledger) Closed() iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.trades {
			if !t.Closed() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the ledger contents, in ledger order. Derived
// views (statistics, benchmark curve) consume snapshots so that they never
// hold a live reference into the ledger.
func (l *Ledger) Snapshot() []Trade {
	return slices.Clone(l.trades)
}

// DedupKeys returns the set of dedup keys for every trade currently in the
// ledger, the persisted half of the importer's duplicate detection.
func (l *Ledger) DedupKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(l.trades))
	for _, t := range l.trades {
		keys[t.DedupKey()] = struct{}{}
	}
	return keys
}
