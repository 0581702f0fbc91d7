package progress_go

import (
	"time"

	"progress-go/percent"
	"progress-go/rate"
	"progress-go/sequence"
)

// RateLimit wraps seq so consecutive values arrive at most once per
// interval. The wrapper is transparent: values pass through unchanged
// and in order, the first value is never delayed, and exhaustion is
// reported immediately.
//
//	for v, ok := seq.Next(); ok; v, ok = seq.Next() { ... }
//
// over RateLimit(inner, 10*time.Millisecond) takes at least 90ms for
// ten values.
func RateLimit[T any](seq sequence.Sequence[T], interval time.Duration, opts ...ConfigOption) *rate.Throttled[T] {
	cfg := applyConfig(opts)
	return rate.NewThrottled[T](seq, interval, rate.WithPacer(cfg.pacerFor(interval)))
}

// RateLimitBounded is RateLimit for bounded sequences. Throttling never
// changes how many values remain, so the remaining count passes through
// and the result can still be wrapped with ShowPercent.
func RateLimitBounded[T any](seq sequence.BoundedSequence[T], interval time.Duration, opts ...ConfigOption) *rate.BoundedThrottled[T] {
	cfg := applyConfig(opts)
	return rate.NewBoundedThrottled[T](seq, interval, rate.WithPacer(cfg.pacerFor(interval)))
}

// ShowPercent wraps a bounded sequence and draws a percent-complete bar
// while the sequence is drained. Redraws overwrite the current line in
// place and are limited to one per 100ms; the pull that reports
// exhaustion always prints the final 100.0% line.
func ShowPercent[T any](seq sequence.BoundedSequence[T], opts ...ConfigOption) *percent.Percent[T] {
	cfg := applyConfig(opts)
	return percent.New[T](seq,
		percent.WithWriter(cfg.writer),
		percent.WithLogger(cfg.logger),
		percent.WithClock(cfg.clk),
	)
}

// Drain pulls seq to exhaustion and returns the yielded values in
// order.
func Drain[T any](seq sequence.Sequence[T]) []T {
	var values []T
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		values = append(values, v)
	}
	return values
}
