package rate

import (
	"context"

	xrate "golang.org/x/time/rate"
)

// Pacer controls how fast a throttled sequence may yield values.
//
// Pace is called once per yielded value, after the inner sequence has
// produced it, and blocks until the yield is permitted. Implementations
// decide the spacing strategy:
//   - *Limiter enforces a fixed gap between consecutive yields
//   - NoopPacer permits every yield immediately
//   - a token bucket allows short bursts around a sustained rate
//
// Pace is never called when the inner sequence is exhausted, so
// exhaustion is never delayed.
type Pacer interface {
	// Pace blocks until the next yield is permitted.
	Pace()
}

type NoopPacer struct {
}

var _ Pacer = &NoopPacer{}

func (n NoopPacer) Pace() {
}

// tokenBucketPacer paces yields through a token bucket, permitting
// bursts of up to burst yields around the sustained rate.
type tokenBucketPacer struct {
	lim *xrate.Limiter
}

var _ Pacer = &tokenBucketPacer{}

// NewTokenBucketPacer returns a Pacer that sustains perSecond yields
// per second with bursts of up to burst. Both are fixed at
// construction. perSecond must be positive and burst at least 1, or
// Pace blocks forever.
func NewTokenBucketPacer(perSecond float64, burst int) Pacer {
	return &tokenBucketPacer{
		lim: xrate.NewLimiter(xrate.Limit(perSecond), burst),
	}
}

func (p *tokenBucketPacer) Pace() {
	// Wait only fails on context cancellation or a request larger
	// than the burst; neither can happen here.
	_ = p.lim.Wait(context.Background())
}
