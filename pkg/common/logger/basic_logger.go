package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// BasicLogger prints human readable lines to stderr, one log line per message line
type BasicLogger struct {
	verbose bool
	out     *log.Logger
}

func NewLogger(verbose bool) *BasicLogger {
	return NewLoggerWithWriter(os.Stderr, verbose)
}

func NewLoggerWithWriter(w io.Writer, verbose bool) *BasicLogger {
	return &BasicLogger{
		verbose: verbose,
		out:     log.New(w, "", log.LstdFlags),
	}
}

func (l *BasicLogger) Title(msg string, args ...any) {
	l.print("", "\n"+msg+"\n", args...)
}

func (l *BasicLogger) Info(msg string, args ...any) {
	l.print("", strings.TrimSuffix(msg, "\n"), args...)
}

func (l *BasicLogger) Warn(msg string, args ...any) {
	l.print("Warning: ", strings.TrimSuffix(msg, "\n"), args...)
}

func (l *BasicLogger) Error(msg string, args ...any) {
	l.print("Error: ", strings.TrimSuffix(msg, "\n"), args...)
}

func (l *BasicLogger) Debug(msg string, args ...any) {
	if !l.verbose {
		return
	}
	l.print("Debug: ", strings.TrimSuffix(msg, "\n"), args...)
}

func (l *BasicLogger) print(prefix, msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	for _, line := range strings.Split(formatted, "\n") {
		l.out.Printf("%s%s", prefix, line)
	}
}
