package percent

import (
	"fmt"
	"io"
	"strings"
	"time"

	"progress-go/errors"
	"progress-go/logger"
	"progress-go/rate"
	"progress-go/sequence"
)

const (
	// renderInterval limits how often the bar is redrawn. Fixed: the
	// bar exists to be glanced at, not tuned.
	renderInterval = 100 * time.Millisecond

	// barWidth is the number of cells between the pipes; each cell
	// covers two percent.
	barWidth = 50
)

// Percent wraps a bounded sequence and draws a progress bar showing how
// much of the sequence has been consumed. The total is captured once at
// construction; each pull redraws the current line in place (rate
// limited to renderInterval, skipping rather than sleeping), and the
// pull that reports exhaustion prints the 100% line exactly once,
// bypassing the rate limit.
//
// Typically created with progress_go.ShowPercent().
type Percent[T any] struct {
	inner   sequence.BoundedSequence[T]
	total   int
	limiter *rate.Limiter
	writer  io.Writer
	logger  logger.Logger
	done    bool
	err     error
}

var _ sequence.BoundedSequence[int] = &Percent[int]{}

// flusher is the optional capability of buffered writers. The bar
// never ends a redraw with a newline, so line-buffered destinations
// would otherwise show nothing until completion.
type flusher interface {
	Flush() error
}

// New wraps a bounded sequence and draws its progress to the
// configured writer.
func New[T any](inner sequence.BoundedSequence[T], opts ...Option) *Percent[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Percent[T]{
		inner:   inner,
		total:   inner.Len(),
		limiter: rate.NewLimiter(renderInterval, rate.WithClock(cfg.clk)),
		writer:  cfg.writer,
		logger:  cfg.logger,
	}
}

// Next redraws the bar, then forwards the pull to the wrapped sequence
// and returns its value unchanged.
func (p *Percent[T]) Next() (T, bool) {
	if remaining := p.inner.Len(); remaining != 0 {
		p.limiter.Act(func() {
			p.render(remaining)
		})
	} else if !p.done {
		p.finish()
	}

	return p.inner.Next()
}

// Len reports the remaining length of the wrapped sequence, so a
// Percent can itself be wrapped by other bounded decorators.
func (p *Percent[T]) Len() int {
	return p.inner.Len()
}

// Err returns the first render failure encountered, wrapped as a
// *errors.RenderError, or nil. Rendering is re-attempted on every
// pull; a transient failure never stops the sequence itself.
func (p *Percent[T]) Err() error {
	return p.err
}

func (p *Percent[T]) render(remaining int) {
	pct := 100.0
	if p.total > 0 {
		pct = 100 * float64(p.total-remaining) / float64(p.total)
	}
	filled := int(pct / 2)

	_, err := fmt.Fprintf(p.writer, "\r|%s%s| %5.1f%%",
		strings.Repeat("#", filled),
		strings.Repeat(" ", barWidth-filled),
		pct,
	)
	if err != nil {
		p.fail(errors.STAGE_RENDER, err)
		return
	}
	p.flush()
}

func (p *Percent[T]) finish() {
	p.done = true

	_, err := fmt.Fprintf(p.writer, "\r|%s| 100.0%%\n", strings.Repeat("#", barWidth))
	if err != nil {
		p.fail(errors.STAGE_FINISH, err)
		return
	}
	p.flush()
}

func (p *Percent[T]) flush() {
	f, ok := p.writer.(flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil {
		p.fail(errors.STAGE_FLUSH, err)
	}
}

func (p *Percent[T]) fail(stage string, err error) {
	renderErr := &errors.RenderError{
		Stage:     stage,
		Type:      errors.TYPE_IO,
		SourceErr: err,
	}
	p.logger.Errorf("percent.Percent: %v", renderErr)
	if p.err == nil {
		p.err = renderErr
	}
}
