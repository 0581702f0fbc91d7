package progress_go

import (
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"

	"progress-go/logger"
	"progress-go/rate"
)

type config struct {
	// writer is the text stream the progress bar is drawn on.
	// default: os.Stdout
	writer io.Writer

	// logger provides logging for render failures and other
	// internal diagnostics.
	// default: logger.Noop
	logger logger.Logger

	// clk is the time source for throttling and redraw limiting.
	// default: clock.New()
	clk clock.Clock

	// pacer overrides the fixed-gap yield spacing of RateLimit,
	// e.g. with rate.NewTokenBucketPacer.
	// default: a rate.Limiter over the requested interval
	pacer rate.Pacer
}

func defaultConfig() *config {
	return &config{
		writer: os.Stdout,
		logger: logger.Noop{},
		clk:    clock.New(),
	}
}

func applyConfig(opts []ConfigOption) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) pacerFor(interval time.Duration) rate.Pacer {
	if c.pacer != nil {
		return c.pacer
	}
	return rate.NewLimiter(interval, rate.WithClock(c.clk))
}

type ConfigOption func(c *config)

func WithWriter(w io.Writer) ConfigOption {
	return func(c *config) {
		c.writer = w
	}
}

func WithLogger(log logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = log
	}
}

func WithClock(clk clock.Clock) ConfigOption {
	return func(c *config) {
		c.clk = clk
	}
}

func WithPacer(pacer rate.Pacer) ConfigOption {
	return func(c *config) {
		c.pacer = pacer
	}
}
