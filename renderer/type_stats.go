package renderer

import (
	"fmt"

	"github.com/openjournal/tradelog"
)

// StatsView is the presentation shape of a statistics bundle, everything
// pre-formatted as strings.
type StatsView struct {
	Total, Wins   int
	Longs, Shorts int

	Gauge, LongGauge, ShortGauge string

	AvgLongsPerMonth, AvgShortsPerMonth string
	AvgHoldLong, AvgHoldShort           string

	SequenceProfitable, SequenceLost int

	Instruments []InstrumentRow
	Weekdays    []WeekdayRow
}

// InstrumentRow is one line of the top-instrument table.
type InstrumentRow struct {
	Rank   string
	Symbol string
	Count  int
}

// WeekdayRow is one line of the day-of-week volume table.
type WeekdayRow struct {
	Symbol string
	Days   [7]int
}

// NewStatsView builds the presentation shape from a statistics bundle.
func NewStatsView(s *tradelog.Stats) *StatsView {
	v := &StatsView{
		Total:              s.Total,
		Wins:               s.Wins,
		Longs:              s.Longs,
		Shorts:             s.Shorts,
		Gauge:              fmt.Sprintf("%d%%", s.Gauge),
		LongGauge:          fmt.Sprintf("%d%%", s.LongGauge),
		ShortGauge:         fmt.Sprintf("%d%%", s.ShortGauge),
		AvgLongsPerMonth:   fmt.Sprintf("%.1f", s.AvgLongsPerMonth),
		AvgShortsPerMonth:  fmt.Sprintf("%.1f", s.AvgShortsPerMonth),
		AvgHoldLong:        holdTime(s.AvgHoldLong),
		AvgHoldShort:       holdTime(s.AvgHoldShort),
		SequenceProfitable: s.SequenceProfitable,
		SequenceLost:       s.SequenceLost,
	}
	for i, r := range s.TopInstruments {
		symbol := r.Symbol
		if symbol == "" {
			symbol = "-"
		}
		rank := fmt.Sprintf("%d", i+1)
		if r.Symbol == "Other" {
			rank = "-"
		}
		v.Instruments = append(v.Instruments, InstrumentRow{Rank: rank, Symbol: symbol, Count: r.Count})
	}
	for _, w := range s.WeekdayVolumes {
		v.Weekdays = append(v.Weekdays, WeekdayRow{Symbol: w.Symbol, Days: w.Days})
	}
	return v
}

// holdTime formats a duration in seconds as "1h 23m" / "23m" / "45s".
func holdTime(seconds int) string {
	switch {
	case seconds <= 0:
		return "-"
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%dh %dm", seconds/3600, seconds%3600/60)
	}
}

// StatsMarkdown renders the statistics bundle to a markdown string.
func StatsMarkdown(s *tradelog.Stats) string {
	partials := map[string]string{
		"stats_gauges":      "stats_gauges.md",
		"stats_activity":    "stats_activity.md",
		"stats_instruments": "stats_instruments.md",
	}
	return renderTemplate("stats", "stats.md", partials, NewStatsView(s))
}
