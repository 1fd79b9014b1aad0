package tradelog

import "math"

// Buckets holds the day/month/year keyed running totals of realized results
// for closed trades. Keys are the canonical strings of Date.DayKey,
// Date.MonthKey and Date.YearKey.
//
// Absence of a key means "no activity or net zero", not "zero recorded":
// consumers decide whether to render a day as having trades by key presence
// alone, so a bucket that nets out to exactly zero is removed.
type Buckets struct {
	Day   map[string]float64
	Month map[string]float64
	Year  map[string]float64
}

// NewBuckets returns an empty bucket set.
func NewBuckets() Buckets {
	return Buckets{
		Day:   make(map[string]float64),
		Month: make(map[string]float64),
		Year:  make(map[string]float64),
	}
}

// Rebuild folds the full snapshot into fresh buckets, O(n). Open trades and
// trades whose result does not parse are skipped, and net-zero keys are
// pruned so that a rebuild agrees with an equivalent delta replay.
func Rebuild(trades []Trade) Buckets {
	b := NewBuckets()
	for _, t := range trades {
		if !t.Closed() || !parsable(t.Result) {
			continue
		}
		b.Apply(t.CloseDate, t.ResultValue())
	}
	return b
}

// Apply adds a delta to the three buckets covering the given close date.
func (b Buckets) Apply(on Date, delta float64) {
	ApplyDelta(b.Day, on.DayKey(), delta)
	ApplyDelta(b.Month, on.MonthKey(), delta)
	ApplyDelta(b.Year, on.YearKey(), delta)
}

// ApplyDelta adds delta to the bucket at key, defaulting to 0 when absent.
// A NaN delta is a no-op (not zero-and-proceed): propagating it would
// corrupt the running total for good. A resulting value of exactly 0
// removes the key.
func ApplyDelta(buckets map[string]float64, key string, delta float64) {
	if buckets == nil || math.IsNaN(delta) {
		return
	}
	v := buckets[key] + delta
	if v == 0 {
		delete(buckets, key)
		return
	}
	buckets[key] = v
}

// DayCount tracks trade counts for one day bucket: total closed trades, and
// the win/loss split. Each closed trade contributes 1, not its dollar
// result; a zero result counts as a win.
type DayCount struct {
	Result int
	Win    int
	Lost   int
}

// DayCounts is the per-day trade count structure, keyed like Buckets.Day.
type DayCounts map[string]DayCount

// RebuildCounts folds the full snapshot into fresh day counts.
func RebuildCounts(trades []Trade) DayCounts {
	c := make(DayCounts)
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		c.Apply(t.CloseDate.DayKey(), t.ResultValue())
	}
	return c
}

// Apply records one closed trade with the given result under key.
func (c DayCounts) Apply(key string, result float64) {
	count := c[key]
	count.Result++
	if result >= 0 {
		count.Win++
	} else {
		count.Lost++
	}
	c[key] = count
}

// Unapply reverts one closed trade previously recorded under key, removing
// the key once no trades remain.
func (c DayCounts) Unapply(key string, result float64) {
	count, ok := c[key]
	if !ok {
		return
	}
	count.Result--
	if result >= 0 {
		count.Win--
	} else {
		count.Lost--
	}
	if count.Result <= 0 {
		delete(c, key)
		return
	}
	c[key] = count
}
