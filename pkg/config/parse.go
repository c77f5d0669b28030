package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a configuration file.
type Format string

// Supported configuration formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a file extension that is neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("unknown configuration format")

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Parse decodes a configuration file. Keys that do not belong to the
// layout are an error, so a misspelled option never goes unnoticed.
func Parse(data []byte, format Format) (*Config, error) {
	switch format {
	case FormatTOML:
		return parseTOML(data)
	case FormatYAML:
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("parse TOML: unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return cfg, nil
}

// Encode writes cfg in the given format. Unset fields are omitted.
func Encode(cfg *Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("close encoder: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}
