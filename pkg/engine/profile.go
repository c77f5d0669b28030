package engine

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yaklabco/hongdown/pkg/options"
)

//go:embed profile/default.toml
var defaultProfile []byte

// EmbeddedLoader returns a loader for the profile compiled into the binary.
func EmbeddedLoader() Loader {
	return LoaderFunc(func() ([]byte, error) {
		return defaultProfile, nil
	})
}

// Init decodes engine bytes into a validated default style. Unknown keys
// are rejected.
func Init(data []byte) (options.Style, error) {
	var style options.Style
	meta, err := toml.Decode(string(data), &style)
	if err != nil {
		return options.Style{}, fmt.Errorf("engine: decode profile: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return options.Style{}, fmt.Errorf("engine: unknown profile keys: %s", strings.Join(keys, ", "))
	}

	if err := style.Validate(); err != nil {
		return options.Style{}, fmt.Errorf("engine: invalid profile: %w", err)
	}
	return style, nil
}
