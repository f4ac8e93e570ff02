package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// LoadSecret reads the deploy key from path and strips surrounding whitespace
func LoadSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSecretFileNotFound, path)
		}
		return "", fmt.Errorf("read secrets file %s: %w", path, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyCredential, path)
	}
	return secret, nil
}

// GenerateSecret writes a fresh secp256k1 key to path and returns its address.
// An existing file is only replaced when force is set.
func GenerateSecret(path string, force bool) (common.Address, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return common.Address{}, fmt.Errorf("%w: %s", ErrSecretExists, path)
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return common.Address{}, fmt.Errorf("generate key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return common.Address{}, fmt.Errorf("create directory for %s: %w", path, err)
	}
	encoded := hexutil.Encode(crypto.FromECDSA(key))
	if err := os.WriteFile(path, []byte(encoded+"\n"), 0600); err != nil {
		return common.Address{}, fmt.Errorf("write secrets file: %w", err)
	}
	// WriteFile keeps the mode of a file it truncates
	if err := os.Chmod(path, 0600); err != nil {
		return common.Address{}, fmt.Errorf("restrict secrets file: %w", err)
	}

	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// EnsureGitIgnored appends entry to the .gitignore in projectDir unless a line
// already matches it. It reports whether the file was changed.
func EnsureGitIgnored(projectDir, entry string) (bool, error) {
	path := filepath.Join(projectDir, GitIgnoreFile)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == entry || line == "/"+entry {
			return false, nil
		}
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// MaskSecret keeps only the first and last four characters of s
func MaskSecret(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + "..." + s[len(s)-4:]
}
