package tradelog

import (
	"math"
	"slices"
	"sort"
	"time"
)

// InstrumentRank is one entry of the top-instrument ranking.
type InstrumentRank struct {
	Symbol string
	Count  int
}

// WeekdayVolume is a 7-slot histogram of one instrument's closed trades by
// UTC day of week (Sunday first, matching time.Weekday).
type WeekdayVolume struct {
	Symbol string
	Days   [7]int
}

// Stats is the bundle of derived statistical views over one ledger
// snapshot. All gauges are floored integer percentages; hold times are in
// seconds.
type Stats struct {
	Total  int // closed trades
	Wins   int
	Longs  int // all long positions, open included
	Shorts int

	Gauge      int // floor(100 * wins / closed trades)
	LongGauge  int
	ShortGauge int

	AvgLongsPerMonth  float64
	AvgShortsPerMonth float64

	AvgHoldLong  int // seconds
	AvgHoldShort int

	SequenceProfitable int // longest run of non-negative results
	SequenceLost       int // longest run of negative results

	// TopInstruments always holds exactly four entries: the three most
	// traded symbols (blank placeholders when fewer exist) plus an "Other"
	// bucket with the remainder.
	TopInstruments []InstrumentRank

	// WeekdayVolumes covers the top three instruments, in ranking order.
	WeekdayVolumes []WeekdayVolume
}

// ComputeStats recomputes the full statistics bundle from a ledger
// snapshot. It is pure and not incremental: it runs on demand for a visible
// statistics page, not on every mutation. Input order is not trusted; the
// snapshot is re-sorted internally where chronology matters.
func ComputeStats(trades []Trade) *Stats {
	return computeStats(trades, time.Now().UTC())
}

func computeStats(trades []Trade, now time.Time) *Stats {
	s := &Stats{}

	closed := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if t.Closed() {
			closed = append(closed, t)
		}
		switch t.Position {
		case Long:
			s.Longs++
		case Short:
			s.Shorts++
		}
	}
	slices.SortStableFunc(closed, func(a, b Trade) int {
		return a.closeStamp().Compare(b.closeStamp())
	})

	s.Total = len(closed)
	var longWins, longClosed, shortWins, shortClosed int
	for _, t := range closed {
		win := t.ResultValue() >= 0
		if win {
			s.Wins++
		}
		switch t.Position {
		case Long:
			longClosed++
			if win {
				longWins++
			}
		case Short:
			shortClosed++
			if win {
				shortWins++
			}
		}
	}
	s.Gauge = gauge(s.Wins, s.Total)
	s.LongGauge = gauge(longWins, longClosed)
	s.ShortGauge = gauge(shortWins, shortClosed)

	months := monthsSince(earliestOpen(trades), now)
	s.AvgLongsPerMonth = float64(s.Longs) / float64(months)
	s.AvgShortsPerMonth = float64(s.Shorts) / float64(months)

	s.AvgHoldLong = avgHoldSeconds(closed, Long)
	s.AvgHoldShort = avgHoldSeconds(closed, Short)

	s.SequenceProfitable, s.SequenceLost = streaks(closed)
	s.TopInstruments = rankInstruments(trades)
	s.WeekdayVolumes = weekdayVolumes(closed, s.TopInstruments)
	return s
}

// gauge is floor(100 * wins / total) with a denominator of 1 substituted
// for an empty set, yielding 0%.
func gauge(wins, total int) int {
	if total == 0 {
		total = 1
	}
	return 100 * wins / total
}

// earliestOpen locates the true earliest open date in the snapshot; the
// input is typically reverse-chronological, so array order is never
// assumed.
func earliestOpen(trades []Trade) Date {
	var first Date
	for _, t := range trades {
		if first.IsZero() || t.OpenDate.Before(first) {
			first = t.OpenDate
		}
	}
	return first
}

// monthsSince counts calendar months between the first trade and now, at
// least 1 so that per-month averages stay total.
func monthsSince(first Date, now time.Time) int {
	if first.IsZero() {
		return 1
	}
	months := (now.Year()-first.Year())*12 + int(now.Month()-first.Month())
	return max(1, months)
}

// avgHoldSeconds averages the open-to-close duration of one side's trades.
// Only trades carrying both a close date and a close time participate;
// trades missing either are excluded from numerator and denominator alike
// rather than counted as zero-duration.
func avgHoldSeconds(closed []Trade, side Position) int {
	var minutes float64
	var n int
	for _, t := range closed {
		if t.Position != side || t.CloseTime == "" {
			continue
		}
		minutes += t.closeStamp().Sub(t.openStamp()).Minutes()
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(minutes / float64(n) * 60))
}

// streaks walks closed trades in chronological order and returns the
// longest run of non-negative results and the longest run of negative ones.
// Ties (result exactly zero) go to the winning side. The in-progress runs
// are flushed once more at the end of the walk, otherwise the last streak
// would be lost.
func streaks(closed []Trade) (profitable, lost int) {
	var curWin, curLost int
	for _, t := range closed {
		if t.ResultValue() >= 0 {
			if curLost > 0 {
				lost = max(lost, curLost)
				curLost = 0
			}
			curWin++
		} else {
			if curWin > 0 {
				profitable = max(profitable, curWin)
				curWin = 0
			}
			curLost++
		}
	}
	return max(profitable, curWin), max(lost, curLost)
}

// rankInstruments counts trades per symbol and returns the top three plus a
// synthetic "Other" bucket holding the remainder. The result always has
// exactly four entries; missing ranks contribute blank zero-count entries
// instead of being omitted.
func rankInstruments(trades []Trade) []InstrumentRank {
	counts := make(map[string]int)
	for _, t := range trades {
		counts[t.Symbol]++
	}
	ranks := make([]InstrumentRank, 0, len(counts))
	for symbol, n := range counts {
		ranks = append(ranks, InstrumentRank{Symbol: symbol, Count: n})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Symbol < ranks[j].Symbol
	})

	top := make([]InstrumentRank, 3, 4)
	copy(top, ranks)
	other := len(trades)
	for _, r := range top {
		other -= r.Count
	}
	return append(top, InstrumentRank{Symbol: "Other", Count: other})
}

// weekdayVolumes buckets the top three instruments' closed trades into
// seven slots by UTC day of week of the close date.
func weekdayVolumes(closed []Trade, top []InstrumentRank) []WeekdayVolume {
	volumes := make([]WeekdayVolume, 0, 3)
	for _, r := range top[:3] {
		if r.Symbol == "" {
			continue
		}
		v := WeekdayVolume{Symbol: r.Symbol}
		for _, t := range closed {
			if t.Symbol == r.Symbol {
				v.Days[int(t.CloseDate.Weekday())]++
			}
		}
		volumes = append(volumes, v)
	}
	return volumes
}
