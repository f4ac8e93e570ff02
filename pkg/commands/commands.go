package commands

import (
	"github.com/Layr-Labs/hhconfig/pkg/commands/config"
	"github.com/Layr-Labs/hhconfig/pkg/commands/version"

	"github.com/urfave/cli/v2"
)

// All returns every top level command in help order
func All() []*cli.Command {
	return []*cli.Command{
		ShowCommand,
		ExportCommand,
		ValidateCommand,
		AccountsCommand,
		SecretCommand,
		NetworkCommand,
		config.Command,
		version.VersionCommand,
	}
}
