package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSecretFileNotFound is returned when the secrets file does not exist
	ErrSecretFileNotFound = errors.New("secrets file not found")

	// ErrEmptyCredential is returned when the secrets file is empty after trimming
	ErrEmptyCredential = errors.New("secrets file holds an empty credential")

	// ErrSecretExists is returned by GenerateSecret when it would overwrite a key
	ErrSecretExists = errors.New("secrets file already exists")

	// ErrInvalidConfig matches every *ValidationError
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPrivateKey marks an account that is not a secp256k1 hex key
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrUnknownNetwork is returned when a network name is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrProtectedPath is returned when an override tries to write account keys
	ErrProtectedPath = errors.New("path cannot be set in the override file")
)

// ValidationError collects every problem found in a RootConfig
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidConfig.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}
