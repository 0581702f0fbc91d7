package logger

// Logger provides a standardized logging interface for the progress-go
// library. It defines methods for different log levels (Debug, Info, Warn,
// Error) to enable consistent logging throughout the library. This interface
// allows users to plug in their preferred logging implementation
// (e.g., glog, logrus, zap, standard log) or use the provided Noop logger
// to disable logging entirely.
//
// The logger is used throughout the library for:
// - Progress-bar render and flush failures
// - Throttle construction and pacing diagnostics
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	bar := progress_go.ShowPercent(seq, progress_go.WithLogger(myLogger))
//
//	// Disable logging entirely (the default)
//	bar := progress_go.ShowPercent(seq, progress_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
