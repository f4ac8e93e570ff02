package commands

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// NetworkCommand groups read-only checks against configured endpoints
var NetworkCommand = &cli.Command{
	Name:  "network",
	Usage: "Inspect configured networks",
	Subcommands: []*cli.Command{
		NetworkCheckCommand,
	},
}

var NetworkCheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Query a network endpoint for its chain id and head block",
	Flags: append([]cli.Flag{
		networkFlag,
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Give up on the endpoint after this long",
			Value: common.DefaultProbeTimeout,
		},
	}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return NetworkCheckRun(cCtx)
	},
}

func NetworkCheckRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	cfg, err := common.LoadRootConfig(common.LoadOptionsFromCLI(cCtx))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name := cCtx.String("network")
	if name == "" {
		name = cfg.DefaultNetwork
	}
	network, ok := cfg.Networks[name]
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownNetwork, name)
	}

	ctx, cancel := context.WithTimeout(cCtx.Context, cCtx.Duration("timeout"))
	defer cancel()

	logger.Debug("Probing %s at %s", name, network.URL)
	status, err := common.ProbeNetwork(ctx, network.URL)
	if err != nil {
		return fmt.Errorf("network %s is not reachable: %w", name, err)
	}

	t := newTable(cCtx.App.Writer)
	t.AppendHeader(table.Row{"Network", "URL", "Chain ID", "Block"})
	t.AppendRow(table.Row{name, status.URL, status.ChainID.String(), status.BlockNumber})
	t.Render()
	return nil
}
