package resources

import (
	"errors"
	"fmt"
)

// Errors returned by Bind.
var (
	// ErrUnknownKey is returned when a key under the "resources." namespace
	// does not match any configuration field.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidValue is returned when a value cannot be converted to the
	// type of its configuration field.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// ConfigurationError reports a configuration entry that could not be bound.
type ConfigurationError struct {
	Key   string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("configuration key %q: %v (value %q)", e.Key, e.Err, e.Value)
	}
	return fmt.Sprintf("configuration key %q: %v", e.Key, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
