// Package logger is the leveled logging interface shared by the CLI and the
// HTTP service.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style log lines.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New returns a Logger writing to the standard logger's output.  Debug
// messages are dropped unless debug is true.
func New(debug bool) Logger { return &stdLogger{l: log.Default(), debug: debug} }

// NewWriter is like New, but writes to w.
func NewWriter(w io.Writer, debug bool) Logger {
	return &stdLogger{l: log.New(w, "", 0), debug: debug}
}

func (l *stdLogger) Debugf(format string, v ...any) {
	if l.debug {
		l.l.Printf("[DEBUG] "+format, v...)
	}
}
func (l *stdLogger) Infof(format string, v ...any)  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }

type nopLogger struct{}

// NewNop returns a Logger that discards everything.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
