// Package tradelog provides the aggregation and analytics engine behind a
// discretionary trading journal. It maintains an ordered in-memory ledger of
// buy/sell positions and derives running views from it:
//
//   - Ledger Management: an ordered collection of trade records, sorted by
//     close date with open positions kept at the tail, supporting ordered
//     insertion, in-place edits and removal.
//   - Bucket Summaries: day/month/year keyed running totals of realized
//     results, maintained by full rebuild or by incremental deltas, suitable
//     for calendar-style rendering.
//   - Statistics: success gauges, side splits, monthly averages, hold-time
//     averages, win/loss streak extrema, top-instrument ranking and weekday
//     volume histograms, computed as pure functions of a ledger snapshot.
//   - Benchmark Curve: a time-bucketed running-capital series compared to a
//     10% annual compounding reference.
//   - CSV Import: normalization and deduplication of broker export files,
//     with per-row partial-failure semantics.
//   - Data Exchange: encoding and decoding of ledger snapshots to and from a
//     human-readable JSONL format.
//
// The engine holds no global state and performs no I/O; every operation is a
// synchronous transformation of an explicit snapshot. This package serves as
// the foundational logic for the `tl` command-line tool.
package tradelog
