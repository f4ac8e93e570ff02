package testutils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Layr-Labs/hhconfig/pkg/common"
	"github.com/Layr-Labs/hhconfig/pkg/common/logger"

	"github.com/urfave/cli/v2"
)

// DevKey is the first default development key of local EVM nodes
const (
	DevKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	DevAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// CreateTempProject returns a project dir whose secrets file holds secret
func CreateTempProject(t *testing.T, secret string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, common.SecretFile), []byte(secret+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	return dir
}

// WriteOverride writes content to the default override path of dir
func WriteOverride(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, common.ConfigDir, common.OverrideConfig)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// CreateTestApp builds an app that runs commands with a no-op logger and
// captures command output
func CreateTestApp(commands ...*cli.Command) (*cli.App, *logger.NoopLogger, *bytes.Buffer) {
	noopLogger := logger.NewNoopLogger()
	out := &bytes.Buffer{}
	app := &cli.App{
		Name:      "hhconfig",
		Commands:  commands,
		Writer:    out,
		ErrWriter: io.Discard,
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, noopLogger)
			return nil
		},
	}
	return app, noopLogger, out
}
