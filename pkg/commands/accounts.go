package commands

import (
	"fmt"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var networkFlag = &cli.StringFlag{
	Name:    "network",
	Aliases: []string{"n"},
	Usage:   "Network name (defaults to defaultNetwork)",
}

// AccountsCommand lists the addresses the configured keys sign as
var AccountsCommand = &cli.Command{
	Name:  "accounts",
	Usage: "List the addresses derived from a network's account keys",
	Flags: append([]cli.Flag{networkFlag}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return AccountsRun(cCtx)
	},
}

func AccountsRun(cCtx *cli.Context) error {
	cfg, err := common.LoadRootConfig(common.LoadOptionsFromCLI(cCtx))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	network := cCtx.String("network")
	if network == "" {
		network = cfg.DefaultNetwork
	}
	accounts, err := common.DeriveAccounts(cfg, network)
	if err != nil {
		return err
	}

	t := newTable(cCtx.App.Writer)
	t.AppendHeader(table.Row{"Network", "Index", "Address", "Key"})
	for _, account := range accounts {
		address := account.Address.Hex()
		if account.Err != nil {
			address = "invalid key"
		}
		t.AppendRow(table.Row{network, account.Index, address, account.Masked})
	}
	t.Render()
	return nil
}
