package common

import (
	"encoding/json"
	"fmt"

	sigsyaml "sigs.k8s.io/yaml"
)

// Render encodes cfg in the wire shape the build tool reads
func Render(cfg *RootConfig, format string) ([]byte, error) {
	switch format {
	case "", FormatJSON:
		return RenderJSON(cfg)
	case FormatYAML:
		return RenderYAML(cfg)
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}

func RenderJSON(cfg *RootConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderYAML goes through the json tags, so both renderings share one contract
func RenderYAML(cfg *RootConfig) ([]byte, error) {
	data, err := sigsyaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Masked returns a copy of cfg with every account replaced by MaskSecret
func Masked(cfg *RootConfig) *RootConfig {
	out := cfg.Clone()
	for name, n := range out.Networks {
		for i, account := range n.Accounts {
			n.Accounts[i] = MaskSecret(account)
		}
		out.Networks[name] = n
	}
	return out
}
