package common

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file into a document node, keeping order and comments
func LoadYAML(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("unmarshal to node: %w", err)
	}
	return &node, nil
}

// EncodeYAML renders a node with two space indentation
func EncodeYAML(node *yaml.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteYAML encodes node and writes it to path
func WriteYAML(path string, node *yaml.Node) error {
	data, err := EncodeYAML(node)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetChildByKey returns the value paired with key in a mapping node
func GetChildByKey(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// LookupPath follows a sequence of mapping keys and returns nil if any is missing
func LookupPath(node *yaml.Node, path []string) *yaml.Node {
	cur := node
	for _, seg := range path {
		cur = GetChildByKey(cur, seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// CloneNode deep copies a node, comments included
func CloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = CloneNode(child)
		}
	}
	return &c
}

// DeepMerge merges src into dst and returns dst.
//
// Mapping keys present in both are merged recursively when both values are
// mappings; otherwise the src value replaces the dst value. Keys only in src
// are appended, so dst keeps its key order. Sequences are replaced, not
// concatenated. Everything taken from src is cloned.
func DeepMerge(dst, src *yaml.Node) *yaml.Node {
	if src == nil {
		return CloneNode(dst)
	}
	if dst == nil || dst.Kind != yaml.MappingNode || src.Kind != yaml.MappingNode {
		return CloneNode(src)
	}

	for i := 0; i+1 < len(src.Content); i += 2 {
		srcKey, srcVal := src.Content[i], src.Content[i+1]

		found := false
		for j := 0; j+1 < len(dst.Content); j += 2 {
			if dst.Content[j].Value != srcKey.Value {
				continue
			}
			found = true
			dstVal := dst.Content[j+1]
			if dstVal.Kind == yaml.MappingNode && srcVal.Kind == yaml.MappingNode {
				dst.Content[j+1] = DeepMerge(dstVal, srcVal)
			} else {
				dst.Content[j+1] = CloneNode(srcVal)
			}
			break
		}

		if !found {
			dst.Content = append(dst.Content, CloneNode(srcKey), CloneNode(srcVal))
		}
	}
	return dst
}

// WriteToPath sets the scalar at a key path inside a mapping node, creating
// intermediate mappings as needed.
func WriteToPath(root *yaml.Node, path []string, val string) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path")
	}

	cur := root
	for i, seg := range path {
		if cur.Kind != yaml.MappingNode {
			return fmt.Errorf("%s is not a mapping", joinPath(path[:i]))
		}
		last := i == len(path)-1
		child := GetChildByKey(cur, seg)

		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			cur.Content = append(cur.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: seg},
				child,
			)
		}
		if last {
			if child.Kind == yaml.MappingNode && len(child.Content) > 0 {
				return fmt.Errorf("%s is a mapping, set its fields instead", joinPath(path))
			}
			writeScalar(child, val)
			return nil
		}
		cur = child
	}
	return nil
}

// writeScalar turns node into a scalar, keeping integers and booleans untyped
func writeScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Content = nil
	node.Value = val
	node.Style = 0

	if isPlainInt(val) {
		node.Tag = "!!int"
		return
	}
	if val == "true" || val == "false" {
		node.Tag = "!!bool"
		return
	}
	node.Tag = "!!str"
	node.Style = yaml.DoubleQuotedStyle
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	out := path[0]
	for _, seg := range path[1:] {
		out += "." + seg
	}
	return out
}

// isPlainInt accepts only canonical integers, so 007 and +5 stay strings
func isPlainInt(val string) bool {
	if _, err := strconv.Atoi(val); err != nil {
		return false
	}
	digits := strings.TrimPrefix(val, "-")
	return digits == "0" || (digits[0] >= '1' && digits[0] <= '9')
}
