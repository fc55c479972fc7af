package logger

import (
	"io"

	"go.uber.org/zap"
)

// Log levels accepted by --log-level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	OffLevel   = "off"
)

// New returns a logger writing to w at the given level.
// OffLevel (used for --quiet) discards everything.
func New(level string, w io.Writer) *Logger {
	if level == OffLevel {
		return Nop()
	}
	return newZapLogger(level, w)
}

// Nop returns a logger that drops all entries.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// ValidLevel reports whether level is one of the known level names.
func ValidLevel(level string) bool {
	switch level {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel, OffLevel:
		return true
	}
	return false
}
