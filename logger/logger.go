package logger

// Logger receives the records emitted while anniversaries are calculated.
// Args are alternating key-value pairs, e.g. "generator", 0, "period", 1.
type Logger interface {
	// Trace receives one record per (generator, period) pair enumerated,
	// with its drawn and emitted counts, and the number of duplicates
	// dropped per calculation.
	Trace(msg string, args ...any)

	// Debug receives the candidate, upcoming and justPassed totals of
	// every calculation.
	Debug(msg string, args ...any)

	// Info receives the configuration of a run, such as the reference
	// instant and the window bounds.
	Info(msg string, args ...any)

	// Warn receives input the calculator had to ignore, like numbers
	// below 1.
	Warn(msg string, args ...any)

	Error(msg string, args ...any)
}

// NoOpLogger discards every record. It is installed by SetDefault(nil).
type NoOpLogger struct{}

var _ Logger = NoOpLogger{}

func (NoOpLogger) Trace(string, ...any) {}
func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}
