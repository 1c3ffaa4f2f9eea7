package config

import "errors"

// Common errors returned by the config package.
var (
	// ErrMissingEndpoint is returned when no content API endpoint is configured.
	ErrMissingEndpoint = errors.New("content endpoint is required")
	// ErrInvalidEndpoint is returned when the content API endpoint is not a valid URL.
	ErrInvalidEndpoint = errors.New("content endpoint is not a valid URL")
	// ErrInvalidValue is returned when a configuration value is out of range.
	ErrInvalidValue = errors.New("invalid configuration value")
)
