package tradelog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// ClockFormat is the format used to represent a trade's local time of day.
const ClockFormat = "15:04"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601 format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// At combines the date with a time of day in ClockFormat into a timestamp at
// UTC. An empty or unparsable clock resolves to midnight, so date-only
// records still produce a usable ordering key.
func (d Date) At(clock string) time.Time {
	t, err := time.Parse(ClockFormat, strings.TrimSpace(clock))
	if err != nil {
		return d.time()
	}
	return time.Date(d.y, d.m, d.d, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// Bucket keys are the canonical string keys used by the bucket summarizer.
// They are 1-based-month, unpadded, so "3-1-2025" is January 3rd 2025.

// DayKey returns the canonical day bucket key, "day-month-year".
func (d Date) DayKey() string {
	return fmt.Sprintf("%d-%d-%d", d.d, int(d.m), d.y)
}

// MonthKey returns the canonical month bucket key, "month-year".
func (d Date) MonthKey() string {
	return fmt.Sprintf("%d-%d", int(d.m), d.y)
}

// YearKey returns the canonical year bucket key.
func (d Date) YearKey() string { return strconv.Itoa(d.y) }

// dateLayouts are the accepted input layouts, in probing order. Broker
// exports commonly use slashed US dates, the journal itself writes ISO.
var dateLayouts = []string{
	readDateFormat,
	"2006/1/2",
	"1/2/2006",
	"2.1.2006",
}

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1", "2025/7/1" or "7/1/2025".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range dateLayouts {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, readDateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	// Keep this parsing strict, as it's for data files.
	// But not too strict, also supports 2025-7-1
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
