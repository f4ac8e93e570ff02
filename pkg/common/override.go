package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigChange records one value written by SetOverride
type ConfigChange struct {
	Path     string
	OldValue string
	NewValue string
}

// ParseAssignment splits "a.b.c=value" into its key path and value
func ParseAssignment(item string) ([]string, string, error) {
	key, val, ok := strings.Cut(item, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return nil, "", fmt.Errorf("invalid assignment %q (want key.path=value)", item)
	}
	segs := strings.Split(key, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil, "", fmt.Errorf("invalid key path %q", key)
		}
	}
	return segs, unquote(val), nil
}

// unquote strips one matching pair of surrounding quotes
func unquote(val string) string {
	if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		return val[1 : len(val)-1]
	}
	return val
}

// account keys only ever come from the secrets file
func isProtectedPath(path []string) bool {
	return len(path) >= 3 && path[0] == "networks" && path[2] == "accounts"
}

// SetOverride applies assignments to the override file at path, creating it if
// needed. The file is only written when the merged configuration still decodes
// and passes ValidateStructure.
func SetOverride(path string, assignments []string) ([]ConfigChange, error) {
	doc, err := loadOrInitOverride(path)
	if err != nil {
		return nil, err
	}
	override := doc.Content[0]

	merged, err := DefaultConfigNode()
	if err != nil {
		return nil, err
	}
	merged = DeepMerge(merged, override)

	changes := make([]ConfigChange, 0, len(assignments))
	for _, item := range assignments {
		keyPath, val, err := ParseAssignment(item)
		if err != nil {
			return nil, err
		}
		if isProtectedPath(keyPath) {
			return nil, fmt.Errorf("%w: %s", ErrProtectedPath, joinPath(keyPath))
		}

		old := ""
		if n := LookupPath(merged, keyPath); n != nil && n.Kind == yaml.ScalarNode {
			old = n.Value
		}

		if err := WriteToPath(merged, keyPath, val); err != nil {
			return nil, fmt.Errorf("set %s: %w", joinPath(keyPath), err)
		}
		if err := WriteToPath(override, keyPath, val); err != nil {
			return nil, fmt.Errorf("set %s: %w", joinPath(keyPath), err)
		}
		changes = append(changes, ConfigChange{Path: joinPath(keyPath), OldValue: old, NewValue: val})
	}

	cfg, err := decodeRootConfig(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateStructure(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := WriteYAML(path, doc); err != nil {
		return nil, fmt.Errorf("write override %s: %w", path, err)
	}
	return changes, nil
}

func loadOrInitOverride(path string) (*yaml.Node, error) {
	empty := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return empty, nil
	}

	doc, err := LoadYAML(path)
	if err != nil {
		return nil, fmt.Errorf("load override %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return empty, nil
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("override %s: expected a mapping at top level", path)
	}
	return doc, nil
}
