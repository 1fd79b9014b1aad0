package renderer

import (
	"github.com/openjournal/tradelog"
)

// Benchmark is the presentation shape of a capital/reference comparison.
type Benchmark struct {
	Rows []BenchmarkRow
}

// BenchmarkRow is one boundary of the comparison window.
type BenchmarkRow struct {
	Label     string
	Capital   string
	Reference string
	Delta     string // capital over reference, signed percentage
}

// NewBenchmark builds the comparison view. The three series are parallel by
// construction; an empty comparison yields no rows.
func NewBenchmark(c tradelog.Comparison, currency string) *Benchmark {
	b := &Benchmark{}
	for i := range c.DateLabels {
		var delta tradelog.Percent
		if ref := c.Reference[i]; ref != 0 {
			delta = tradelog.Percent(100 * (c.CapitalChanges[i] - ref) / ref)
		}
		b.Rows = append(b.Rows, BenchmarkRow{
			Label:     c.DateLabels[i],
			Capital:   tradelog.M(c.CapitalChanges[i], currency).String(),
			Reference: tradelog.M(c.Reference[i], currency).String(),
			Delta:     delta.SignedString(),
		})
	}
	return b
}

// BenchmarkMarkdown renders the comparison to a markdown string.
func BenchmarkMarkdown(c tradelog.Comparison, currency string) string {
	return renderTemplate("benchmark", "benchmark.md", nil, NewBenchmark(c, currency))
}
