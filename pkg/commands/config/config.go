package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Layr-Labs/hhconfig/pkg/common"
	"github.com/Layr-Labs/hhconfig/pkg/common/iface"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var Command = &cli.Command{
	Name:  "config",
	Usage: "Views or edits the project override merged onto the built-in configuration",
	Subcommands: []*cli.Command{
		ListCommand,
		SetCommand,
	},
}

var ListCommand = &cli.Command{
	Name:  "list",
	Usage: "Print the project override file",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return ListRun(cCtx)
	},
}

var SetCommand = &cli.Command{
	Name:      "set",
	Usage:     "Set values in the project override (config set solidity.settings.optimizer.runs=1000)",
	ArgsUsage: "key.path=value [key.path=value ...]",
	Flags:     append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return SetRun(cCtx)
	},
}

func ListRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)
	path := common.LoadOptionsFromCLI(cCtx).OverridePath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("No overrides at %s, the built-in configuration is used as is", path)
		return nil
	}

	doc, err := common.LoadYAML(path)
	if err != nil {
		return fmt.Errorf("read override %s: %w", path, err)
	}
	data, err := common.EncodeYAML(doc)
	if err != nil {
		return err
	}

	logger.Info("--- %s ---", path)
	_, err = cCtx.App.Writer.Write(data)
	return err
}

func SetRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)
	path := common.LoadOptionsFromCLI(cCtx).OverridePath()

	items := cCtx.Args().Slice()
	if len(items) == 0 {
		return fmt.Errorf("nothing to set, pass one or more key.path=value arguments")
	}

	changes, err := common.SetOverride(path, items)
	if err != nil {
		return err
	}
	logConfigChanges(changes, logger)
	logger.Info("Updated %s", path)
	return nil
}

// logConfigChanges logs changes grouped by top level section
func logConfigChanges(changes []common.ConfigChange, logger iface.Logger) {
	sections := make(map[string][]common.ConfigChange)
	for _, change := range changes {
		section := strings.Split(change.Path, ".")[0]
		sections[section] = append(sections[section], change)
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	titleCaser := cases.Title(language.English)
	for _, name := range names {
		logger.Info("%s changes:", titleCaser.String(name))
		for _, change := range sections[name] {
			if change.OldValue == "" {
				logger.Info("  - %s added (value: %s)", change.Path, change.NewValue)
				continue
			}
			logger.Info("  - %s changed from '%s' to '%s'", change.Path, change.OldValue, change.NewValue)
		}
	}
}
