package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Output defaults
	DefaultOutputBaseDir = "."

	// Clone defaults
	CloneMethodGit     = "git"
	CloneMethodGoGit   = "go-git"
	DefaultCloneMethod = CloneMethodGit
	DefaultCloneDepth  = 0
	DefaultGitBinary   = "git"
	DefaultTempPrefix  = "repoanalyzer-clone-"

	// Encoding defaults
	DefaultPrimaryEncoding  = "utf-8"
	DefaultFallbackEncoding = "iso-8859-1"

	// Markdown defaults
	DefaultProgress = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// CloneMethods lists the supported clone methods
var CloneMethods = []string{CloneMethodGit, CloneMethodGoGit}

// DefaultKeywords are the definition keywords highlighted in the contents document
var DefaultKeywords = []string{"def", "class"}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repoanalyzer"
	}
	return filepath.Join(home, ".repoanalyzer")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			BaseDir: DefaultOutputBaseDir,
		},
		Clone: CloneConfig{
			Method:     DefaultCloneMethod,
			Depth:      DefaultCloneDepth,
			GitBinary:  DefaultGitBinary,
			TempPrefix: DefaultTempPrefix,
		},
		Encoding: EncodingConfig{
			Primary:  DefaultPrimaryEncoding,
			Fallback: DefaultFallbackEncoding,
		},
		Markdown: MarkdownConfig{
			Keywords: append([]string(nil), DefaultKeywords...),
			Progress: DefaultProgress,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
