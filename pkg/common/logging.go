package common

import (
	"context"
	"os"

	"github.com/Layr-Labs/hhconfig/pkg/common/iface"
	"github.com/Layr-Labs/hhconfig/pkg/common/logger"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// loggerContextKey is used to store the logger in the context
type loggerContextKey struct{}

// IsTTY reports whether stdout is an interactive terminal
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetLoggerFromCLIContext creates a logger honouring the --verbose flag
func GetLoggerFromCLIContext(cCtx *cli.Context) iface.Logger {
	return GetLogger(cCtx.Bool("verbose"))
}

// GetLogger returns a plain logger on a terminal and a structured one otherwise
func GetLogger(verbose bool) iface.Logger {
	if IsTTY() {
		return logger.NewLogger(verbose)
	}
	return logger.NewZapLogger(verbose)
}

// WithLogger stores the logger in the context
func WithLogger(ctx context.Context, logger iface.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// HasLogger reports whether a logger was already stored in ctx
func HasLogger(ctx context.Context) bool {
	_, ok := ctx.Value(loggerContextKey{}).(iface.Logger)
	return ok
}

// LoggerFromContext retrieves the logger from the context, falling back to a
// non-verbose one
func LoggerFromContext(ctx context.Context) iface.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(iface.Logger); ok {
		return logger
	}
	return GetLogger(false)
}
