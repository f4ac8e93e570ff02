package commands

import (
	"fmt"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

// SecretCommand manages the local secrets file
var SecretCommand = &cli.Command{
	Name:  "secret",
	Usage: "Manage the local secrets file holding the deploy key",
	Subcommands: []*cli.Command{
		SecretInitCommand,
	},
}

var SecretInitCommand = &cli.Command{
	Name:  "init",
	Usage: "Generate a new deploy key into the secrets file",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Replace an existing secrets file",
		},
	}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return SecretInitRun(cCtx)
	},
}

func SecretInitRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)
	opts := common.LoadOptionsFromCLI(cCtx)
	path := opts.SecretPath()

	address, err := common.GenerateSecret(path, cCtx.Bool("force"))
	if err != nil {
		return err
	}
	logger.Info("Wrote a new deploy key to %s", path)
	logger.Info("Deploy address: %s", address.Hex())

	// Only a secrets file inside the project can be ignored by its .gitignore
	if opts.SecretFile == "" {
		added, err := common.EnsureGitIgnored(opts.ProjectDir, common.SecretFile)
		if err != nil {
			return fmt.Errorf("update %s: %w", common.GitIgnoreFile, err)
		}
		if added {
			logger.Info("Added %s to %s", common.SecretFile, common.GitIgnoreFile)
		}
	} else {
		logger.Warn("Make sure %s is not committed", path)
	}
	return nil
}
