package config

import "errors"

// Sentinel errors returned by package config.
var (
	// ErrInvalidNumber indicates Number resolved to zero or a negative
	// value, whether from the file, the environment, or an option.
	ErrInvalidNumber = errors.New("config: number must be positive")

	// ErrInvalidOutputPath indicates OutputPath resolved to the empty
	// string.
	ErrInvalidOutputPath = errors.New("config: output path must not be empty")
)
