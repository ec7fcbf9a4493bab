package planar

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr holds the active logger; swapped atomically so SetLogger may
// race with clipping on other goroutines.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger installs the logger used by planar and by packages built on it.
// By default nothing is logged. Pass nil to restore the silent logger.
//
// Levels:
//   - Debug: per-call clipping summaries
//   - Warn: clipping traversals aborted on malformed input
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
