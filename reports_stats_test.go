package tradelog

import (
	"slices"
	"testing"
	"time"
)

func TestStreaks(t *testing.T) {
	tests := []struct {
		name       string
		results    []string
		profitable int
		lost       int
	}{
		{"empty", nil, 0, 0},
		{"alternating", []string{"1", "2", "-1", "-2", "-3", "1"}, 2, 3},
		{"all wins", []string{"1", "0", "3"}, 3, 0},
		{"all losses", []string{"-1", "-2"}, 0, 2},
		{"ends on streak", []string{"-1", "1", "2", "3"}, 3, 1},
		{"zero is a win", []string{"-1", "0", "-1"}, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			closed := make([]Trade, 0, len(tc.results))
			day := MustParseDate("2025-01-02")
			for i, r := range tc.results {
				closed = append(closed, closedTrade("ESU5", Long, "2025-01-01", day.Add(i).String(), r))
			}
			profitable, lost := streaks(closed)
			if profitable != tc.profitable || lost != tc.lost {
				t.Errorf("streaks = (%d, %d), want (%d, %d)", profitable, lost, tc.profitable, tc.lost)
			}
		})
	}
}

func TestGauge(t *testing.T) {
	if got := gauge(2, 3); got != 66 {
		t.Errorf("gauge(2, 3) = %d, want 66 (floored)", got)
	}
	if got := gauge(0, 0); got != 0 {
		t.Errorf("gauge(0, 0) = %d, want 0", got)
	}
	if got := gauge(3, 3); got != 100 {
		t.Errorf("gauge(3, 3) = %d, want 100", got)
	}
}

func TestRankInstruments(t *testing.T) {
	trades := []Trade{
		closedTrade("A", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("A", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("B", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("C", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("C", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("C", Long, "2025-01-01", "2025-01-02", "1"),
	}
	want := []InstrumentRank{{"C", 3}, {"A", 2}, {"B", 1}, {"Other", 0}}
	if got := rankInstruments(trades); !slices.Equal(got, want) {
		t.Errorf("rankInstruments = %v, want %v", got, want)
	}
}

func TestRankInstrumentsPadsAndOverflows(t *testing.T) {
	// fewer than three symbols: blank placeholders, Other stays 0
	one := []Trade{closedTrade("A", Long, "2025-01-01", "2025-01-02", "1")}
	want := []InstrumentRank{{"A", 1}, {"", 0}, {"", 0}, {"Other", 0}}
	if got := rankInstruments(one); !slices.Equal(got, want) {
		t.Errorf("rankInstruments = %v, want %v", got, want)
	}

	// more than three symbols: the tail lands in Other
	many := []Trade{
		closedTrade("A", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("A", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("B", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("C", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("D", Long, "2025-01-01", "2025-01-02", "1"),
		closedTrade("E", Long, "2025-01-01", "2025-01-02", "1"),
	}
	got := rankInstruments(many)
	if len(got) != 4 {
		t.Fatalf("ranking must always have 4 entries, got %d", len(got))
	}
	if got[0].Symbol != "A" || got[3].Symbol != "Other" || got[3].Count != 2 {
		t.Errorf("rankInstruments = %v", got)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	a := closedTrade("ESU5", Long, "2025-04-01", "2025-04-01", "100")
	a.CloseTime = "10:30" // 1h hold from the helper's 09:30 open
	b := closedTrade("ESU5", Long, "2025-04-02", "2025-04-02", "-50")
	b.CloseTime = "10:00" // 30m hold
	c := closedTrade("NQU5", Short, "2025-05-01", "2025-05-02", "25")
	c.CloseTime = "" // no close time: excluded from hold averages
	open := openTrade("CLF6", Long, "2025-06-01")

	s := computeStats([]Trade{c, b, a, open}, now)

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.Wins != 2 {
		t.Errorf("Wins = %d, want 2", s.Wins)
	}
	if s.Longs != 3 || s.Shorts != 1 {
		t.Errorf("Longs/Shorts = %d/%d, want 3/1 (open trades count)", s.Longs, s.Shorts)
	}
	if s.Gauge != 66 {
		t.Errorf("Gauge = %d, want 66", s.Gauge)
	}
	if s.LongGauge != 50 {
		t.Errorf("LongGauge = %d, want 50", s.LongGauge)
	}
	if s.ShortGauge != 100 {
		t.Errorf("ShortGauge = %d, want 100", s.ShortGauge)
	}

	// April to July is 3 months
	if got, want := s.AvgLongsPerMonth, 1.0; got != want {
		t.Errorf("AvgLongsPerMonth = %v, want %v", got, want)
	}

	// long holds: 60m and 30m, average 45m = 2700s
	if s.AvgHoldLong != 2700 {
		t.Errorf("AvgHoldLong = %d, want 2700", s.AvgHoldLong)
	}
	if s.AvgHoldShort != 0 {
		t.Errorf("AvgHoldShort = %d, want 0 (only trade has no close time)", s.AvgHoldShort)
	}

	// chronological: +100, -50, +25
	if s.SequenceProfitable != 1 || s.SequenceLost != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", s.SequenceProfitable, s.SequenceLost)
	}

	if len(s.TopInstruments) != 4 || s.TopInstruments[0].Symbol != "ESU5" {
		t.Errorf("TopInstruments = %v", s.TopInstruments)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := computeStats(nil, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))
	if s.Total != 0 || s.Gauge != 0 {
		t.Errorf("empty snapshot: Total=%d Gauge=%d, want zeros", s.Total, s.Gauge)
	}
	if s.AvgLongsPerMonth != 0 {
		t.Errorf("AvgLongsPerMonth = %v, want 0", s.AvgLongsPerMonth)
	}
	if len(s.TopInstruments) != 4 {
		t.Errorf("even empty stats carry the 4-entry ranking, got %v", s.TopInstruments)
	}
	if len(s.WeekdayVolumes) != 0 {
		t.Errorf("WeekdayVolumes = %v, want none", s.WeekdayVolumes)
	}
}

func TestWeekdayVolumes(t *testing.T) {
	// 2025-01-06 is a Monday, 2025-01-08 a Wednesday
	trades := []Trade{
		closedTrade("ESU5", Long, "2025-01-06", "2025-01-06", "1"),
		closedTrade("ESU5", Long, "2025-01-06", "2025-01-08", "1"),
		closedTrade("ESU5", Long, "2025-01-08", "2025-01-08", "1"),
	}
	s := computeStats(trades, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	if len(s.WeekdayVolumes) != 1 {
		t.Fatalf("WeekdayVolumes = %v", s.WeekdayVolumes)
	}
	v := s.WeekdayVolumes[0]
	if v.Symbol != "ESU5" {
		t.Errorf("Symbol = %q", v.Symbol)
	}
	if v.Days[time.Monday] != 1 || v.Days[time.Wednesday] != 2 {
		t.Errorf("Days = %v, want Monday=1 Wednesday=2", v.Days)
	}
}
