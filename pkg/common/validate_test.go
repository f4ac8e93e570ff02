package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *RootConfig {
	return &RootConfig{
		DefaultNetwork: "rinkeby",
		Networks: map[string]NetworkConfig{
			"rinkeby": {URL: "https://rinkeby.infura.io/v3/", Accounts: []string{"abc123"}},
		},
		Solidity: SolidityConfig{
			Version:  "0.5.10",
			Settings: CompilerSettings{Optimizer: OptimizerConfig{Enabled: true, Runs: 200}},
		},
		Paths: PathsConfig{Sources: "./contracts", Cache: "./cache", Artifacts: "./artifacts"},
		Mocha: MochaConfig{Timeout: 20000},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RootConfig)
		want   string
	}{
		{"missing default network", func(c *RootConfig) { c.DefaultNetwork = "mainnet" }, `defaultNetwork "mainnet" is not in networks`},
		{"empty default network", func(c *RootConfig) { c.DefaultNetwork = "" }, "defaultNetwork is empty"},
		{"bad scheme", func(c *RootConfig) {
			c.Networks["rinkeby"] = NetworkConfig{URL: "ftp://example.com", Accounts: []string{"k"}}
		}, `unsupported scheme "ftp"`},
		{"relative url", func(c *RootConfig) {
			c.Networks["rinkeby"] = NetworkConfig{URL: "rinkeby.infura.io", Accounts: []string{"k"}}
		}, "networks.rinkeby.url"},
		{"no accounts", func(c *RootConfig) {
			c.Networks["rinkeby"] = NetworkConfig{URL: "https://rinkeby.infura.io/v3/"}
		}, "accounts is empty for the default network"},
		{"blank account", func(c *RootConfig) {
			c.Networks["rinkeby"] = NetworkConfig{URL: "https://rinkeby.infura.io/v3/", Accounts: []string{" "}}
		}, "networks.rinkeby.accounts[0] is empty"},
		{"version", func(c *RootConfig) { c.Solidity.Version = "latest" }, "solidity.version"},
		{"runs", func(c *RootConfig) { c.Solidity.Settings.Optimizer.Runs = 0 }, "optimizer.runs must be positive"},
		{"paths", func(c *RootConfig) { c.Paths.Cache = "" }, "paths.cache is empty"},
		{"timeout", func(c *RootConfig) { c.Mocha.Timeout = -1 }, "mocha.timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := validConfig()
	cfg.Mocha.Timeout = 0
	cfg.Solidity.Settings.Optimizer.Runs = 0

	err := cfg.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}

func TestValidateStructure_AllowsMissingAccounts(t *testing.T) {
	cfg := validConfig()
	cfg.Networks["rinkeby"] = NetworkConfig{URL: "wss://rinkeby.infura.io/ws/v3/"}

	assert.NoError(t, cfg.ValidateStructure())
	assert.Error(t, cfg.Validate())
}

func TestIsSemver(t *testing.T) {
	assert.True(t, IsSemver("0.5.10"))
	assert.True(t, IsSemver("v0.8.24"))
	assert.False(t, IsSemver("0.5"))
	assert.False(t, IsSemver("^0.5.10"))
}
