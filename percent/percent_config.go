package percent

import (
	"io"
	"os"

	"github.com/benbjohnson/clock"

	"progress-go/logger"
)

type config struct {
	// writer is the text stream the bar is drawn on.
	// default: os.Stdout
	writer io.Writer

	// logger receives render-failure diagnostics.
	// default: logger.Noop
	logger logger.Logger

	// clk drives the redraw rate limiter. Substituting a mock makes
	// redraw timing deterministic in tests.
	// default: clock.New()
	clk clock.Clock
}

func defaultConfig() *config {
	return &config{
		writer: os.Stdout,
		logger: logger.Noop{},
		clk:    clock.New(),
	}
}

type Option func(c *config)

func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		c.clk = clk
	}
}
