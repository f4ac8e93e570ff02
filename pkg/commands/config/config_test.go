package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Layr-Labs/hhconfig/pkg/common"
	"github.com/Layr-Labs/hhconfig/pkg/common/logger"
	"github.com/Layr-Labs/hhconfig/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand_ListWithoutOverride(t *testing.T) {
	dir := t.TempDir()
	app, noopLogger, out := testutils.CreateTestApp(Command)

	require.NoError(t, app.Run([]string{"hhconfig", "config", "list", "--project-dir", dir}))

	assert.Empty(t, out.String())
	assert.True(t, noopLogger.Contains("No overrides at"))
}

func TestConfigCommand_ListOutput(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteOverride(t, dir, "solidity:\n  version: 0.8.19\n")
	app, _, out := testutils.CreateTestApp(Command)

	require.NoError(t, app.Run([]string{"hhconfig", "config", "list", "--project-dir", dir}))

	assert.Contains(t, out.String(), "version: 0.8.19")
}

func TestConfigCommand_SetCreatesOverride(t *testing.T) {
	dir := testutils.CreateTempProject(t, "abc123")
	app, noopLogger, _ := testutils.CreateTestApp(Command)

	err := app.Run([]string{
		"hhconfig", "config", "set", "--project-dir", dir,
		"solidity.settings.optimizer.runs=1000",
		"networks.localhost.url=http://127.0.0.1:8545",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, common.ConfigDir, common.OverrideConfig))
	require.NoError(t, err)
	assert.Contains(t, string(data), "runs: 1000")
	assert.Contains(t, string(data), "127.0.0.1:8545")

	cfg, err := common.LoadRootConfig(common.LoadOptions{ProjectDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Solidity.Settings.Optimizer.Runs)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Networks["localhost"].URL)
	assert.Equal(t, "0.5.10", cfg.Solidity.Version)

	assert.True(t, noopLogger.Contains("Solidity changes:"))
	assert.True(t, noopLogger.Contains("Networks changes:"))
	assert.True(t, noopLogger.Contains("solidity.settings.optimizer.runs changed from '200' to '1000'"))
	assert.True(t, noopLogger.Contains("networks.localhost.url added"))
}

func TestConfigCommand_SetRejectsAccounts(t *testing.T) {
	dir := t.TempDir()
	app, _, _ := testutils.CreateTestApp(Command)

	err := app.Run([]string{"hhconfig", "config", "set", "--project-dir", dir, "networks.rinkeby.accounts=0xdead"})
	assert.ErrorIs(t, err, common.ErrProtectedPath)

	_, statErr := os.Stat(filepath.Join(dir, common.ConfigDir, common.OverrideConfig))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigCommand_SetRejectsInvalidValue(t *testing.T) {
	dir := t.TempDir()
	app, _, _ := testutils.CreateTestApp(Command)

	err := app.Run([]string{"hhconfig", "config", "set", "--project-dir", dir, "mocha.timeout=0"})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	_, statErr := os.Stat(filepath.Join(dir, common.ConfigDir, common.OverrideConfig))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigCommand_SetRequiresArgs(t *testing.T) {
	app, _, _ := testutils.CreateTestApp(Command)

	err := app.Run([]string{"hhconfig", "config", "set", "--project-dir", t.TempDir()})
	assert.ErrorContains(t, err, "nothing to set")
}

func TestLogConfigChanges_SortsSections(t *testing.T) {
	l := logger.NewNoopLogger()
	logConfigChanges([]common.ConfigChange{
		{Path: "solidity.version", OldValue: "0.5.10", NewValue: "0.8.19"},
		{Path: "mocha.timeout", OldValue: "20000", NewValue: "60000"},
	}, l)

	messages := l.GetMessagesByLevel("INFO")
	require.Len(t, messages, 4)
	assert.Equal(t, "Mocha changes:", messages[0])
	assert.Equal(t, "Solidity changes:", messages[2])
}
