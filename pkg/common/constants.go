package common

import "time"

// Project structure constants
const (
	// SecretFile is the untracked file holding the deploy key, relative to the project root
	SecretFile = ".secret"

	// ConfigDir is the subdirectory holding project level configuration
	ConfigDir = "config"

	// OverrideConfig is the filename of the optional project override, inside ConfigDir
	OverrideConfig = "hardhat.override.yaml"

	// EnvFile is loaded into the environment before any command runs
	EnvFile = ".env"

	// GitIgnoreFile is checked when a new secret is generated
	GitIgnoreFile = ".gitignore"

	// Environment fallbacks for the global flags
	SecretFileEnv   = "HHCONFIG_SECRET_FILE"
	OverrideFileEnv = "HHCONFIG_OVERRIDE_FILE"

	// Default bound on a network probe
	DefaultProbeTimeout = 10 * time.Second

	// Output formats for rendered configuration
	FormatJSON = "json"
	FormatYAML = "yaml"
)
