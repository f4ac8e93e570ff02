package commands

import (
	"fmt"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Usage: "Output format: json or yaml",
	Value: common.FormatJSON,
}

// ShowCommand prints the assembled configuration
var ShowCommand = &cli.Command{
	Name:  "show",
	Usage: "Print the build configuration with account keys masked",
	Flags: append([]cli.Flag{
		formatFlag,
		&cli.BoolFlag{
			Name:  "reveal",
			Usage: "Print account keys in full",
		},
	}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return ShowRun(cCtx)
	},
}

func ShowRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)
	opts := common.LoadOptionsFromCLI(cCtx)

	cfg, err := common.LoadRootConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("Loaded config using secret %s and override %s", opts.SecretPath(), opts.OverridePath())

	if !cCtx.Bool("reveal") {
		cfg = common.Masked(cfg)
	}

	data, err := common.Render(cfg, cCtx.String("format"))
	if err != nil {
		return err
	}
	_, err = cCtx.App.Writer.Write(data)
	return err
}
