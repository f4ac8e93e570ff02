package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ZapLogger is used when output is not a terminal (CI, pipes)
type ZapLogger struct {
	log *zap.SugaredLogger
}

func NewZapLogger(verbose bool) *ZapLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{log: logger.Sugar()}
}

// NewZapLoggerFrom wraps an existing zap logger
func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{log: logger.Sugar()}
}

func (l *ZapLogger) Title(msg string, args ...any) {
	formatted := strings.Trim(fmt.Sprintf(msg, args...), "\n")
	for _, line := range strings.Split(formatted, "\n") {
		if line != "" {
			l.log.Info(line)
		}
	}
}

func (l *ZapLogger) Info(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Infof(msg, args...)
	}
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Warnf(msg, args...)
	}
}

func (l *ZapLogger) Error(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Errorf(msg, args...)
	}
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Debugf(msg, args...)
	}
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}
