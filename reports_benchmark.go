package tradelog

import (
	"math"
	"strconv"
	"time"
)

// benchmarkPoints is how many boundaries the comparison window is divided
// into. The span is split by equal time, not by equal trade count.
const benchmarkPoints = 6

// benchmarkRate is the annual compounding rate of the reference series.
const benchmarkRate = 0.10

const yearHours = 24 * 365.25

// Comparison is the benchmark view: the actual running-capital series over
// six equal-time boundaries, the boundary labels, and a 10%-annual
// compounding reference evaluated at the same boundaries.
type Comparison struct {
	CapitalChanges []float64
	DateLabels     []string
	Reference      []float64
}

// Compare produces the capital curve for one ledger snapshot against the
// compounding benchmark. The window runs from the earliest close date to
// now. Degenerate input (no closed trades, or an undefined starting
// capital) returns three empty series rather than an error.
func Compare(trades []Trade, startingCapital float64) Comparison {
	return compare(trades, startingCapital, time.Now().UTC())
}

func compare(trades []Trade, startingCapital float64, now time.Time) Comparison {
	empty := Comparison{
		CapitalChanges: []float64{},
		DateLabels:     []string{},
		Reference:      []float64{},
	}
	if math.IsNaN(startingCapital) || startingCapital <= 0 {
		return empty
	}

	closed := make([]Trade, 0, len(trades))
	var earliest time.Time
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		closed = append(closed, t)
		if ts := t.closeStamp(); earliest.IsZero() || ts.Before(earliest) {
			earliest = ts
		}
	}
	if len(closed) == 0 {
		return empty
	}

	span := now.Sub(earliest)
	if span < 0 {
		span = 0
	}
	// Under six months of history the boundary dates carry no readable
	// information; label them ordinally instead.
	ordinal := earliest.AddDate(0, 6, 0).After(now)

	c := Comparison{
		CapitalChanges: make([]float64, 0, benchmarkPoints),
		DateLabels:     make([]string, 0, benchmarkPoints),
		Reference:      make([]float64, 0, benchmarkPoints),
	}
	for i := 0; i < benchmarkPoints; i++ {
		boundary := earliest.Add(span * time.Duration(i) / (benchmarkPoints - 1))

		var realized float64
		for _, t := range closed {
			if !t.closeStamp().After(boundary) {
				realized += t.ResultValue()
			}
		}
		c.CapitalChanges = append(c.CapitalChanges, startingCapital+realized)

		years := boundary.Sub(earliest).Hours() / yearHours
		c.Reference = append(c.Reference, math.Floor(startingCapital*math.Pow(1+benchmarkRate, years)))

		if ordinal {
			c.DateLabels = append(c.DateLabels, strconv.Itoa(i))
		} else {
			c.DateLabels = append(c.DateLabels, boundary.Format("01/2006"))
		}
	}
	return c
}
