package bezier

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for warnings about questionable arguments.
// A nil logger restores the use of [slog.Default].
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func warnLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
