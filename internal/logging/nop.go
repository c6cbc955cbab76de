package logging

import "go.uber.org/zap"

// NewNop returns a Logger that discards all output. Intended for tests and
// as a safe fallback when no logger is supplied.
func NewNop() Logger {
	return &zapLogger{logger: zap.NewNop()}
}
