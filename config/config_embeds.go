package config

import _ "embed"

// HardhatYaml holds the built-in build configuration. The deploy key is never
// part of it; the loader injects it from the secrets file.
//
//go:embed hardhat.yaml
var HardhatYaml []byte
