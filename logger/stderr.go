package logger

import (
	"fmt"
	"os"
)

// stdErr logs to the standard error stream. The progress bar owns stdout
// (it rewrites the current line in place), so diagnostics must go elsewhere
// or they would corrupt the bar.
type stdErr struct {
	print func(msg string)
}

var _ Logger = &stdErr{}

func NewStdErr() Logger {
	return &stdErr{
		print: func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
	}
}

func (p *stdErr) Debugf(format string, args ...any) {
	p.print(fmt.Sprintf("[DEBUG] "+format, args...))
}

func (p *stdErr) Infof(format string, args ...any) {
	p.print(fmt.Sprintf("[INFO] "+format, args...))
}

func (p *stdErr) Warnf(format string, args ...any) {
	p.print(fmt.Sprintf("[WARN] "+format, args...))
}

func (p *stdErr) Errorf(format string, args ...any) {
	p.print(fmt.Sprintf("[ERROR] "+format, args...))
}
