package rate

import (
	"time"

	"progress-go/sequence"
)

// Throttled wraps a sequence and spaces out its yields so consecutive
// values arrive at most once per interval; otherwise it is transparent.
// Values pass through unchanged and in order, and exhaustion is
// reported immediately without consulting the pacer.
//
// Typically created with progress_go.RateLimit().
type Throttled[T any] struct {
	inner sequence.Sequence[T]
	pacer Pacer
}

var _ sequence.Sequence[int] = &Throttled[int]{}

type throttleConfig struct {
	// pacer overrides the default fixed-interval Limiter.
	// default: NewLimiter(interval)
	pacer Pacer
}

type ThrottleOption func(c *throttleConfig)

// WithPacer substitutes the pacing strategy, e.g. a token bucket from
// NewTokenBucketPacer or a Limiter built over a mock clock. The
// interval passed to the constructor is ignored when a pacer is
// supplied.
func WithPacer(pacer Pacer) ThrottleOption {
	return func(c *throttleConfig) {
		c.pacer = pacer
	}
}

// NewThrottled wraps inner so consecutive yields are spaced at least
// interval apart.
func NewThrottled[T any](inner sequence.Sequence[T], interval time.Duration, opts ...ThrottleOption) *Throttled[T] {
	cfg := throttleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pacer == nil {
		cfg.pacer = NewLimiter(interval)
	}
	return &Throttled[T]{
		inner: inner,
		pacer: cfg.pacer,
	}
}

// Next pulls the next value from the wrapped sequence, pacing the yield
// rather than the inner computation: the inner pull runs first, then
// Next blocks until the pacer permits handing the value out.
func (t *Throttled[T]) Next() (T, bool) {
	v, ok := t.inner.Next()
	if !ok {
		return v, false
	}
	t.pacer.Pace()
	return v, true
}

// BoundedThrottled is a Throttled over a bounded sequence. Throttling
// only affects timing, never the count, so the remaining length passes
// through unchanged and the wrapper stays bounded. That keeps chains
// like RateLimit(...) under ShowPercent(...) possible.
type BoundedThrottled[T any] struct {
	*Throttled[T]
	bounded sequence.BoundedSequence[T]
}

var _ sequence.BoundedSequence[int] = &BoundedThrottled[int]{}

// NewBoundedThrottled wraps a bounded sequence, preserving its
// remaining-count capability.
func NewBoundedThrottled[T any](inner sequence.BoundedSequence[T], interval time.Duration, opts ...ThrottleOption) *BoundedThrottled[T] {
	return &BoundedThrottled[T]{
		Throttled: NewThrottled[T](inner, interval, opts...),
		bounded:   inner,
	}
}

func (t *BoundedThrottled[T]) Len() int {
	return t.bounded.Len()
}
