package commands

import (
	"fmt"

	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

// ValidateCommand loads the configuration and checks every account key
var ValidateCommand = &cli.Command{
	Name:  "validate",
	Usage: "Check the build configuration and every account key",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return ValidateRun(cCtx)
	},
}

func ValidateRun(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	cfg, err := common.LoadRootConfig(common.LoadOptionsFromCLI(cCtx))
	if err != nil {
		return err
	}

	invalid := 0
	for _, name := range cfg.NetworkNames() {
		accounts, err := common.DeriveAccounts(cfg, name)
		if err != nil {
			return err
		}
		for _, account := range accounts {
			if account.Err != nil {
				invalid++
				logger.Error("networks.%s.accounts[%d] (%s): %v", name, account.Index, account.Masked, account.Err)
				continue
			}
			logger.Debug("networks.%s.accounts[%d] signs as %s", name, account.Index, account.Address.Hex())
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d account key(s) cannot sign", common.ErrInvalidPrivateKey, invalid)
	}

	logger.Info("Configuration is valid (default network %s, solc %s)", cfg.DefaultNetwork, cfg.Solidity.Version)
	return nil
}
