package rate

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Limiter is a simple never-faster-than-the-interval rate limiter.
// It remembers when an action last ran and either skips, or sleeps
// through, attempts that arrive too early.
//
// A fresh Limiter backdates its last-run instant by one full interval,
// so the first action is always permitted immediately.
//
// Limiter is not safe for concurrent use; every decorator in this
// library owns its limiter exclusively.
//
// Usage Example:
//
//	limiter := rate.NewLimiter(5 * time.Second)
//	total := 0
//	for i := 3; i < 10; i++ {
//	    i := i
//	    limiter.Act(func() { total += i })
//	}
//	// only the first action ran: total == 3
type Limiter struct {
	interval time.Duration
	last     time.Time
	clk      clock.Clock
}

type LimiterOption func(l *Limiter)

// WithClock substitutes the clock used for elapsed-time checks and for
// sleeping. Useful for injecting clock.NewMock() in tests.
func WithClock(clk clock.Clock) LimiterOption {
	return func(l *Limiter) {
		l.clk = clk
	}
}

// NewLimiter initializes a rate limiter for the specified interval.
// A zero interval produces a limiter that never skips and never sleeps.
func NewLimiter(interval time.Duration, opts ...LimiterOption) *Limiter {
	l := &Limiter{
		interval: interval,
		clk:      clock.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.last = l.clk.Now().Add(-interval)
	return l
}

// TryAct runs fn if at least one interval has elapsed since the last
// permitted action and reports whether fn ran. It never blocks.
func (l *Limiter) TryAct(fn func()) bool {
	if l.clk.Now().Sub(l.last) < l.interval {
		return false
	}
	l.last = l.clk.Now()
	fn()
	return true
}

// Act runs fn if the rate limit allows, discarding the ran/skipped
// report. Used where only the side effect matters, e.g. printing.
func (l *Limiter) Act(fn func()) {
	l.TryAct(fn)
}

// SleepAct always runs fn, sleeping first if less than one interval has
// elapsed since the last permitted action.
//
// After waking it advances the last-run instant by exactly one interval
// rather than snapping it to "now". A caller that is slower than the
// rate limit therefore leaves the limiter behind real time, and the
// next few actions run back to back until it has caught up. This keeps
// the long-run cadence at exactly one action per interval.
func (l *Limiter) SleepAct(fn func()) {
	if wait := l.interval - l.clk.Now().Sub(l.last); wait > 0 {
		l.clk.Sleep(wait)
	}
	l.last = l.last.Add(l.interval)
	fn()
}

// Pace implements Pacer by sleeping through the rate limit without
// running any action.
func (l *Limiter) Pace() {
	l.SleepAct(func() {})
}

// TryAct runs fn through l if the rate limit allows and returns its
// result. The bool reports whether fn ran; on a skip the T is the zero
// value. A package-level function because Go methods cannot introduce
// type parameters of their own.
func TryAct[T any](l *Limiter, fn func() T) (T, bool) {
	var v T
	ok := l.TryAct(func() {
		v = fn()
	})
	return v, ok
}

// SleepAct runs fn through l, sleeping through the rate limit first if
// necessary, and returns its result.
func SleepAct[T any](l *Limiter, fn func() T) T {
	var v T
	l.SleepAct(func() {
		v = fn()
	})
	return v
}
