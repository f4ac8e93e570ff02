package common

import (
	"net/url"
	"sort"
	"strings"
)

var endpointSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// Validate checks every invariant of the record and reports all problems at once
func (c *RootConfig) Validate() error {
	return c.validate(true)
}

// ValidateStructure runs Validate without requiring accounts on the default
// network, for configurations that have not had their secret injected yet.
func (c *RootConfig) ValidateStructure() error {
	return c.validate(false)
}

func (c *RootConfig) validate(requireAccounts bool) error {
	verr := &ValidationError{}

	if c.DefaultNetwork == "" {
		verr.add("defaultNetwork is empty")
	} else if _, ok := c.Networks[c.DefaultNetwork]; !ok {
		verr.add("defaultNetwork %q is not in networks", c.DefaultNetwork)
	}

	for _, name := range c.NetworkNames() {
		network := c.Networks[name]
		if err := validateEndpoint(network.URL); err != "" {
			verr.add("networks.%s.url %s", name, err)
		}
		for i, account := range network.Accounts {
			if strings.TrimSpace(account) == "" {
				verr.add("networks.%s.accounts[%d] is empty", name, i)
			}
		}
		if requireAccounts && name == c.DefaultNetwork && len(network.Accounts) == 0 {
			verr.add("networks.%s.accounts is empty for the default network", name)
		}
	}

	if !IsSemver(c.Solidity.Version) {
		verr.add("solidity.version %q is not a semantic version", c.Solidity.Version)
	}
	if c.Solidity.Settings.Optimizer.Runs <= 0 {
		verr.add("solidity.settings.optimizer.runs must be positive, got %d", c.Solidity.Settings.Optimizer.Runs)
	}

	if c.Paths.Sources == "" {
		verr.add("paths.sources is empty")
	}
	if c.Paths.Cache == "" {
		verr.add("paths.cache is empty")
	}
	if c.Paths.Artifacts == "" {
		verr.add("paths.artifacts is empty")
	}

	if c.Mocha.Timeout <= 0 {
		verr.add("mocha.timeout must be positive, got %d", c.Mocha.Timeout)
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// validateEndpoint returns a short description of what is wrong with raw, or ""
func validateEndpoint(raw string) string {
	if raw == "" {
		return "is empty"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "does not parse: " + err.Error()
	}
	if !endpointSchemes[strings.ToLower(u.Scheme)] {
		return "has unsupported scheme " + quote(u.Scheme)
	}
	if u.Host == "" {
		return "has no host"
	}
	return ""
}

func quote(s string) string {
	return `"` + s + `"`
}

// NetworkNames returns the configured network names in sorted order
func (c *RootConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
