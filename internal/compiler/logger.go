package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/brzozowski/expr"
)

const logPrefix = "[brzozowski] "

// Logger prints diagnostics when verbose mode is on and nothing otherwise.
// The zero value is a disabled logger.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to os.Stderr when enabled.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...any) {
	if l.Enabled() {
		fmt.Fprintf(l.out, logPrefix+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n%s=== %s ===\n", logPrefix, name)
	}
}

// Tree logs e in canonical and infix form with its node count.
func (l *Logger) Tree(label string, e *expr.Expr) {
	if l.Enabled() {
		l.Log("%s: %s  [%s, %d nodes]", label, e, e.Infix(), e.Size())
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled && l.out != nil
}
