package options

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultEmDashPattern is the pattern used when emDash is set to true.
const DefaultEmDashPattern = "---"

// EmDash is the emDash option, which is either a boolean or a pattern string.
type EmDash struct {
	Enabled bool
	Pattern string
}

// EmDashBool returns an EmDash option set from a boolean.
func EmDashBool(enabled bool) *EmDash {
	return &EmDash{Enabled: enabled}
}

// EmDashPattern returns an EmDash option that replaces pattern.
func EmDashPattern(pattern string) *EmDash {
	return &EmDash{Enabled: true, Pattern: pattern}
}

// Resolve returns the pattern to replace, or "" when em dashes are off.
func (e EmDash) Resolve() string {
	if !e.Enabled {
		return ""
	}
	if e.Pattern == "" {
		return DefaultEmDashPattern
	}
	return e.Pattern
}

func (e *EmDash) set(value any) error {
	switch v := value.(type) {
	case bool:
		*e = EmDash{Enabled: v}
	case string:
		*e = EmDash{Enabled: true, Pattern: v}
	default:
		return fmt.Errorf("emDash must be a boolean or a string, got %T", value)
	}
	return nil
}

// MarshalJSON writes the boolean form when no explicit pattern is set.
func (e EmDash) MarshalJSON() ([]byte, error) {
	if e.Pattern != "" {
		return json.Marshal(e.Pattern)
	}
	return json.Marshal(e.Enabled)
}

// UnmarshalJSON accepts a boolean or a string.
func (e *EmDash) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("parse emDash: %w", err)
	}
	return e.set(value)
}

// MarshalYAML writes the boolean form when no explicit pattern is set.
func (e EmDash) MarshalYAML() (any, error) {
	if e.Pattern != "" {
		return e.Pattern, nil
	}
	return e.Enabled, nil
}

// UnmarshalYAML accepts a boolean or a string.
func (e *EmDash) UnmarshalYAML(node *yaml.Node) error {
	var value any
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("parse emDash: %w", err)
	}
	return e.set(value)
}

// MarshalTOML writes the boolean form when no explicit pattern is set.
func (e EmDash) MarshalTOML() ([]byte, error) {
	if e.Pattern != "" {
		return []byte(strconv.Quote(e.Pattern)), nil
	}
	return []byte(strconv.FormatBool(e.Enabled)), nil
}

// UnmarshalTOML accepts a boolean or a string.
func (e *EmDash) UnmarshalTOML(value any) error {
	return e.set(value)
}
