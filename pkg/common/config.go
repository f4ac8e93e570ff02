package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Layr-Labs/hhconfig/config"
	"gopkg.in/yaml.v3"
)

// RootConfig is the record handed to the build tool. The json and yaml tags are
// the wire contract and must not change.
type RootConfig struct {
	DefaultNetwork string                   `json:"defaultNetwork" yaml:"defaultNetwork"`
	Networks       map[string]NetworkConfig `json:"networks" yaml:"networks"`
	Solidity       SolidityConfig           `json:"solidity" yaml:"solidity"`
	Paths          PathsConfig              `json:"paths" yaml:"paths"`
	Mocha          MochaConfig              `json:"mocha" yaml:"mocha"`
}

// NetworkConfig is a named remote endpoint plus the keys used to sign for it
type NetworkConfig struct {
	URL      string   `json:"url" yaml:"url"`
	Accounts []string `json:"accounts" yaml:"accounts"`
}

type SolidityConfig struct {
	Version  string           `json:"version" yaml:"version"`
	Settings CompilerSettings `json:"settings" yaml:"settings"`
}

type CompilerSettings struct {
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer"`
}

type OptimizerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

type PathsConfig struct {
	Sources   string `json:"sources" yaml:"sources"`
	Cache     string `json:"cache" yaml:"cache"`
	Artifacts string `json:"artifacts" yaml:"artifacts"`
}

// MochaConfig carries the test runner timeout in milliseconds
type MochaConfig struct {
	Timeout int `json:"timeout" yaml:"timeout"`
}

// LoadOptions locates the files a RootConfig is assembled from. Relative
// paths are resolved against ProjectDir.
type LoadOptions struct {
	ProjectDir   string
	SecretFile   string
	OverrideFile string
}

// SecretPath returns the resolved secrets file path
func (o LoadOptions) SecretPath() string {
	return o.resolve(o.SecretFile, SecretFile)
}

// OverridePath returns the resolved override file path
func (o LoadOptions) OverridePath() string {
	return o.resolve(o.OverrideFile, filepath.Join(ConfigDir, OverrideConfig))
}

func (o LoadOptions) resolve(p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.ProjectDir, p)
}

// LoadRootConfig reads the deploy key, assembles the configuration from the
// built-in defaults and the optional override file, and validates the result.
func LoadRootConfig(opts LoadOptions) (*RootConfig, error) {
	secret, err := LoadSecret(opts.SecretPath())
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfigWithoutSecret(opts.OverridePath())
	if err != nil {
		return nil, err
	}

	// The deploy key always comes first so index 0 is the signer
	if network, ok := cfg.Networks[cfg.DefaultNetwork]; ok {
		network.Accounts = append([]string{secret}, network.Accounts...)
		cfg.Networks[cfg.DefaultNetwork] = network
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigWithoutSecret merges the override file at overridePath (if any)
// onto the built-in defaults and decodes the result. No accounts are injected
// and nothing is validated.
func LoadConfigWithoutSecret(overridePath string) (*RootConfig, error) {
	node, err := mergedConfigNode(overridePath)
	if err != nil {
		return nil, err
	}
	return decodeRootConfig(node)
}

// DefaultConfigNode returns the built-in configuration as a mapping node
func DefaultConfigNode() (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(config.HardhatYaml, &doc); err != nil {
		return nil, fmt.Errorf("parse built-in config: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("built-in config is empty")
	}
	return doc.Content[0], nil
}

// loadOverrideNode returns nil when there is no override to apply
func loadOverrideNode(path string) (*yaml.Node, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	doc, err := LoadYAML(path)
	if err != nil {
		return nil, fmt.Errorf("load override %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("override %s: expected a mapping at top level", path)
	}
	return root, nil
}

func mergedConfigNode(overridePath string) (*yaml.Node, error) {
	base, err := DefaultConfigNode()
	if err != nil {
		return nil, err
	}
	override, err := loadOverrideNode(overridePath)
	if err != nil {
		return nil, err
	}
	if override == nil {
		return base, nil
	}
	return DeepMerge(base, override), nil
}

func decodeRootConfig(node *yaml.Node) (*RootConfig, error) {
	var cfg RootConfig
	if err := node.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Networks == nil {
		cfg.Networks = map[string]NetworkConfig{}
	}
	// accounts render as a sequence even when the override never set them
	for name, n := range cfg.Networks {
		if n.Accounts == nil {
			n.Accounts = []string{}
			cfg.Networks[name] = n
		}
	}
	return &cfg, nil
}

// Clone returns a deep copy so callers can redact or edit without touching the loaded record
func (c *RootConfig) Clone() *RootConfig {
	out := *c
	out.Networks = make(map[string]NetworkConfig, len(c.Networks))
	for name, n := range c.Networks {
		accounts := make([]string, len(n.Accounts))
		copy(accounts, n.Accounts)
		n.Accounts = accounts
		out.Networks[name] = n
	}
	return &out
}
