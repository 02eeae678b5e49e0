package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config represents the complete manifest configuration
type Config struct {
	Sources []Source `yaml:"sources" json:"sources"`
	Options Options  `yaml:"options" json:"options"`

	// Dir is the directory of the manifest file; empty when loaded from bytes
	Dir string `yaml:"-" json:"-"`
}

// Source is one repository to analyze: a clone URL or a local path
type Source struct {
	Input string `yaml:"input" json:"input"`
}

// Options represents global manifest options
type Options struct {
	ContinueOnError bool `yaml:"continue_on_error" json:"continue_on_error"`
	// Output overrides output.base_dir for every source
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Validate validates the manifest configuration
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	for i, src := range c.Sources {
		if strings.TrimSpace(src.Input) == "" {
			return fmt.Errorf("source %d: %w", i, ErrEmptyInput)
		}
	}
	return nil
}

// Resolve joins a relative filesystem path onto the manifest directory.
// Absolute paths, home-relative paths and empty strings are returned as is,
// as is everything when Dir is unset.
func (c *Config) Resolve(path string) string {
	if c.Dir == "" || path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "~") {
		return path
	}
	return filepath.Join(c.Dir, path)
}
