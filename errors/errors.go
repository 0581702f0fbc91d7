package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_RENDER = "render"
	STAGE_FLUSH  = "flush"
	STAGE_FINISH = "finish"

	TYPE_UNKNOWN = "unknown"
	TYPE_IO      = "io"
)

// RenderError is reported when the progress bar fails to write or flush
// its output stream. The bar swallows nothing: a bar that cannot render
// has lost its reason for existing, so the failure is kept and surfaced
// to the caller driving the sequence.
type RenderError struct {
	Stage     string
	Type      string
	SourceErr error
}

var _ error = &RenderError{}

func (e *RenderError) Error() string {
	return fmt.Sprintf(
		"progress render failed during '%s' stage with error type '%s'; original err: %v",
		e.Stage, e.Type, e.SourceErr,
	)
}

func (e *RenderError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &RenderError{}) returns false for any
// RenderError that is not the exact same pointer.
func (e *RenderError) Is(other error) bool {
	var err *RenderError
	return errors.As(other, &err) && err != nil
}
