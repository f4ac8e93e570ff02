package common

import (
	"os"

	"github.com/urfave/cli/v2"
)

// GlobalFlags are appended to every command
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable verbose logging",
	},
	&cli.StringFlag{
		Name:  "project-dir",
		Usage: "Project root the secrets, override and .env files are resolved against",
		Value: ".",
	},
	&cli.StringFlag{
		Name:  "secret-file",
		Usage: "Secrets file holding the deploy key (env " + SecretFileEnv + ")",
	},
	&cli.StringFlag{
		Name:  "override-file",
		Usage: "Project override merged onto the built-in config (env " + OverrideFileEnv + ")",
	},
}

// LoadOptionsFromCLI resolves file locations from flags, then the environment,
// then the defaults. The environment is read at call time so values from the
// project .env file are seen.
func LoadOptionsFromCLI(cCtx *cli.Context) LoadOptions {
	return LoadOptions{
		ProjectDir:   cCtx.String("project-dir"),
		SecretFile:   flagOrEnv(cCtx, "secret-file", SecretFileEnv),
		OverrideFile: flagOrEnv(cCtx, "override-file", OverrideFileEnv),
	}
}

func flagOrEnv(cCtx *cli.Context, flag, env string) string {
	if v := cCtx.String(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}
