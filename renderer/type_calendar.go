package renderer

import (
	"time"

	"github.com/openjournal/tradelog"
)

// Calendar is the presentation shape of one month of day buckets.
type Calendar struct {
	Title string
	Days  []CalendarDay
	Total string // month net result, signed
}

// CalendarDay is one day with recorded activity. Days absent from the
// bucket map (no activity, or net zero) are not listed.
type CalendarDay struct {
	Day    int
	Result string
	Trades int
	Wins   int
	Losses int
}

// NewCalendar builds the calendar view of one month from the bucket maps.
func NewCalendar(year int, month time.Month, buckets tradelog.Buckets, counts tradelog.DayCounts, currency string) *Calendar {
	first := tradelog.NewDate(year, month, 1)
	cal := &Calendar{
		Title: first.Format("January 2006"),
		Total: tradelog.M(buckets.Month[first.MonthKey()], currency).SignedString(),
	}
	for day := first; day.Month() == month; day = day.Add(1) {
		key := day.DayKey()
		sum, active := buckets.Day[key]
		count, counted := counts[key]
		if !active && !counted {
			continue
		}
		cal.Days = append(cal.Days, CalendarDay{
			Day:    day.Day(),
			Result: tradelog.M(sum, currency).SignedString(),
			Trades: count.Result,
			Wins:   count.Win,
			Losses: count.Lost,
		})
	}
	return cal
}

// CalendarMarkdown renders one month of day buckets to a markdown string.
func CalendarMarkdown(year int, month time.Month, buckets tradelog.Buckets, counts tradelog.DayCounts, currency string) string {
	return renderTemplate("calendar", "calendar.md", nil, NewCalendar(year, month, buckets, counts, currency))
}
