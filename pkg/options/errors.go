package options

import "fmt"

// ConfigError reports an option value outside its domain.
type ConfigError struct {
	// Field is the option name, e.g. "fenceChar".
	Field string

	// Reason describes what is wrong with the value.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Reason)
}
