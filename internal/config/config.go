package config

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Clone    CloneConfig    `mapstructure:"clone" yaml:"clone"`
	Encoding EncodingConfig `mapstructure:"encoding" yaml:"encoding"`
	Markdown MarkdownConfig `mapstructure:"markdown" yaml:"markdown"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// BaseDir is where the <name>_analysis directory is created
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"`
}

// CloneConfig contains settings for acquiring remote repositories
type CloneConfig struct {
	Method     string `mapstructure:"method" yaml:"method"`
	Depth      int    `mapstructure:"depth" yaml:"depth"`
	GitBinary  string `mapstructure:"git_binary" yaml:"git_binary"`
	TempPrefix string `mapstructure:"temp_prefix" yaml:"temp_prefix"`
}

// EncodingConfig contains the character encodings used to decode file contents
type EncodingConfig struct {
	Primary  string `mapstructure:"primary" yaml:"primary"`
	Fallback string `mapstructure:"fallback" yaml:"fallback"`
}

// MarkdownConfig contains settings for the contents document
type MarkdownConfig struct {
	Keywords []string `mapstructure:"keywords" yaml:"keywords"`
	Progress bool     `mapstructure:"progress" yaml:"progress"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	// Verbose forces debug logging. It comes from --verbose or the
	// environment and is never written to a config file.
	Verbose bool `mapstructure:"verbose" yaml:"-"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.BaseDir) == "" {
		c.Output.BaseDir = DefaultOutputBaseDir
	}

	c.Clone.Method = strings.ToLower(strings.TrimSpace(c.Clone.Method))
	if c.Clone.Method == "" {
		c.Clone.Method = DefaultCloneMethod
	}
	if !IsValidCloneMethod(c.Clone.Method) {
		return domain.NewValidationError("clone.method",
			fmt.Sprintf("%q is not one of %s", c.Clone.Method, strings.Join(CloneMethods, ", ")))
	}
	if c.Clone.Depth < 0 {
		c.Clone.Depth = DefaultCloneDepth
	}
	if c.Clone.GitBinary == "" {
		c.Clone.GitBinary = DefaultGitBinary
	}
	if c.Clone.TempPrefix == "" {
		c.Clone.TempPrefix = DefaultTempPrefix
	}

	if c.Encoding.Primary == "" {
		c.Encoding.Primary = DefaultPrimaryEncoding
	}
	if c.Encoding.Fallback == "" {
		c.Encoding.Fallback = DefaultFallbackEncoding
	}

	var keywords []string
	for _, kw := range c.Markdown.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		keywords = append([]string(nil), DefaultKeywords...)
	}
	c.Markdown.Keywords = keywords

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// IsValidCloneMethod reports whether method names a supported cloner
func IsValidCloneMethod(method string) bool {
	for _, m := range CloneMethods {
		if m == method {
			return true
		}
	}
	return false
}
