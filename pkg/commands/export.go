package commands

import (
	"fmt"
	"os"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

// ExportCommand writes the configuration, keys included, for the build tool to read
var ExportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write the full build configuration, including account keys",
	Flags: append([]cli.Flag{
		formatFlag,
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Write to this file (mode 0600) instead of stdout",
		},
	}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return ExportRun(cCtx)
	},
}

func ExportRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	cfg, err := common.LoadRootConfig(common.LoadOptionsFromCLI(cCtx))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := common.Render(cfg, cCtx.String("format"))
	if err != nil {
		return err
	}

	out := cCtx.String("out")
	if out == "" {
		_, err = cCtx.App.Writer.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := os.Chmod(out, 0600); err != nil {
		return fmt.Errorf("restrict %s: %w", out, err)
	}
	logger.Info("Wrote configuration to %s", out)
	return nil
}
