package hooks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type ActionChain struct {
	Processors []func(action cli.ActionFunc) cli.ActionFunc
}

// NewActionChain creates a new action chain
func NewActionChain() *ActionChain {
	return &ActionChain{
		Processors: make([]func(action cli.ActionFunc) cli.ActionFunc, 0),
	}
}

// Use appends a new processor to the chain; the first one added runs outermost
func (ac *ActionChain) Use(processor func(action cli.ActionFunc) cli.ActionFunc) {
	ac.Processors = append(ac.Processors, processor)
}

func (ac *ActionChain) Wrap(action cli.ActionFunc) cli.ActionFunc {
	for i := len(ac.Processors) - 1; i >= 0; i-- {
		action = ac.Processors[i](action)
	}
	return action
}

// ApplyMiddleware wraps every action in commands and their subcommands
func ApplyMiddleware(commands []*cli.Command, chain *ActionChain) {
	for _, cmd := range commands {
		if cmd.Action != nil {
			cmd.Action = chain.Wrap(cmd.Action)
		}
		if len(cmd.Subcommands) > 0 {
			ApplyMiddleware(cmd.Subcommands, chain)
		}
	}
}

// DefaultChain is the middleware every hhconfig command runs through
func DefaultChain() *ActionChain {
	chain := NewActionChain()
	chain.Use(WithLogger)
	chain.Use(WithShutdown)
	chain.Use(WithEnvFile)
	chain.Use(WithCommandTiming)
	return chain
}

type syncer interface {
	Sync() error
}

// WithLogger stores a logger in the command context unless one is already
// there, and flushes it once the action returns
func WithLogger(action cli.ActionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		if !common.HasLogger(cCtx.Context) {
			cCtx.Context = common.WithLogger(cCtx.Context, common.GetLoggerFromCLIContext(cCtx))
		}
		if s, ok := common.LoggerFromContext(cCtx.Context).(syncer); ok {
			// stdout and stderr cannot be synced on some platforms
			defer func() { _ = s.Sync() }()
		}
		return action(cCtx)
	}
}

// WithShutdown cancels the command context on SIGINT/SIGTERM
func WithShutdown(action cli.ActionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		ctx, cancel := context.WithCancel(cCtx.Context)
		defer cancel()
		cCtx.Context = common.WithShutdown(ctx)
		return action(cCtx)
	}
}

// WithEnvFile loads the project .env before the action runs
func WithEnvFile(action cli.ActionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		if err := LoadEnvFile(cCtx.String("project-dir")); err != nil {
			return fmt.Errorf("load %s: %w", common.EnvFile, err)
		}
		return action(cCtx)
	}
}

// LoadEnvFile loads projectDir/.env if it exists. Variables already set in the
// environment are left untouched.
func LoadEnvFile(projectDir string) error {
	path := filepath.Join(projectDir, common.EnvFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// WithCommandTiming logs the outcome and duration of every command at debug level
func WithCommandTiming(action cli.ActionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		start := time.Now()

		err := action(cCtx)

		result := "success"
		if err != nil {
			result = "failure"
		}
		logger.Debug("command %q finished: %s in %s (flags: %s)",
			cCtx.Command.Name, result, time.Since(start).Round(time.Millisecond), formatFlags(collectFlagValues(cCtx)))
		return err
	}
}

func getFlagValue(ctx *cli.Context, name string) interface{} {
	if !ctx.IsSet(name) {
		return nil
	}
	if ctx.Bool(name) {
		return ctx.Bool(name)
	}
	if ctx.String(name) != "" {
		return ctx.String(name)
	}
	if ctx.Duration(name) != 0 {
		return ctx.Duration(name)
	}
	return nil
}

func collectFlagValues(ctx *cli.Context) map[string]interface{} {
	flags := make(map[string]interface{})
	if ctx.Command == nil {
		return flags
	}
	for _, flag := range ctx.Command.Flags {
		name := flag.Names()[0]
		if ctx.IsSet(name) {
			flags[name] = getFlagValue(ctx, name)
		}
	}
	return flags
}

func formatFlags(flags map[string]interface{}) string {
	if len(flags) == 0 {
		return "none"
	}
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, flags[name]))
	}
	return strings.Join(parts, " ")
}
