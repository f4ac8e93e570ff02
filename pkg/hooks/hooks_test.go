package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Layr-Labs/hhconfig/pkg/common"
	"github.com/Layr-Labs/hhconfig/pkg/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestActionChain_Order(t *testing.T) {
	var calls []string
	record := func(name string) func(cli.ActionFunc) cli.ActionFunc {
		return func(next cli.ActionFunc) cli.ActionFunc {
			return func(cCtx *cli.Context) error {
				calls = append(calls, name)
				return next(cCtx)
			}
		}
	}

	chain := NewActionChain()
	chain.Use(record("outer"))
	chain.Use(record("inner"))

	action := chain.Wrap(func(cCtx *cli.Context) error {
		calls = append(calls, "action")
		return nil
	})
	require.NoError(t, action(cli.NewContext(cli.NewApp(), nil, nil)))

	assert.Equal(t, []string{"outer", "inner", "action"}, calls)
}

func TestApplyMiddleware_Subcommands(t *testing.T) {
	wrapped := 0
	chain := NewActionChain()
	chain.Use(func(next cli.ActionFunc) cli.ActionFunc {
		wrapped++
		return next
	})

	noop := func(*cli.Context) error { return nil }
	commands := []*cli.Command{
		{Name: "show", Action: noop},
		{Name: "secret", Subcommands: []*cli.Command{{Name: "init", Action: noop}}},
	}
	ApplyMiddleware(commands, chain)

	assert.Equal(t, 2, wrapped)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.EnvFile),
		[]byte("HHCONFIG_TEST_SECRET=keys/deploy\nHHCONFIG_TEST_PRESET=from-file\n"), 0644))

	t.Setenv("HHCONFIG_TEST_PRESET", "from-env")
	t.Setenv("HHCONFIG_TEST_SECRET", "")
	require.NoError(t, os.Unsetenv("HHCONFIG_TEST_SECRET"))

	require.NoError(t, LoadEnvFile(dir))

	assert.Equal(t, "keys/deploy", os.Getenv("HHCONFIG_TEST_SECRET"))
	assert.Equal(t, "from-env", os.Getenv("HHCONFIG_TEST_PRESET"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(t.TempDir()))
}

func TestDefaultChain_KeepsInjectedLogger(t *testing.T) {
	noop := logger.NewNoopLogger()
	var seen bool

	cmd := &cli.Command{
		Name:  "probe",
		Flags: append([]cli.Flag{&cli.BoolFlag{Name: "reveal"}}, common.GlobalFlags...),
		Action: func(cCtx *cli.Context) error {
			seen = common.LoggerFromContext(cCtx.Context) == noop
			return nil
		},
	}
	ApplyMiddleware([]*cli.Command{cmd}, DefaultChain())

	app := &cli.App{
		Name:     "hhconfig",
		Commands: []*cli.Command{cmd},
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, noop)
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"hhconfig", "probe", "--reveal", "--project-dir", t.TempDir()}))

	assert.True(t, seen)
	assert.True(t, noop.ContainsLevel("DEBUG", `command "probe" finished: success`))
	assert.True(t, noop.ContainsLevel("DEBUG", "reveal=true"))
}

type syncingLogger struct {
	*logger.NoopLogger
	synced int
}

func (l *syncingLogger) Sync() error {
	l.synced++
	return nil
}

func TestWithLogger_SyncsAfterAction(t *testing.T) {
	l := &syncingLogger{NoopLogger: logger.NewNoopLogger()}
	var syncedDuringAction int

	cmd := &cli.Command{
		Name: "show",
		Action: func(cCtx *cli.Context) error {
			syncedDuringAction = l.synced
			return nil
		},
	}
	ApplyMiddleware([]*cli.Command{cmd}, &ActionChain{
		Processors: []func(cli.ActionFunc) cli.ActionFunc{WithLogger},
	})

	app := &cli.App{
		Name:     "hhconfig",
		Commands: []*cli.Command{cmd},
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, l)
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"hhconfig", "show"}))

	assert.Equal(t, 0, syncedDuringAction)
	assert.Equal(t, 1, l.synced)
}
