package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read by the loader
const EnvPrefix = "REPOANALYZER"

// Load loads configuration from defaults, a config file and REPOANALYZER_*
// environment variables. It uses the global viper instance, which carries
// the CLI flag bindings. When path is empty, config.yaml is searched for in
// ~/.repoanalyzer and the working directory and may be absent; otherwise
// path must exist.
func Load(path string) (*Config, error) {
	return load(viper.GetViper(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables (REPOANALYZER_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.base_dir", DefaultOutputBaseDir)

	v.SetDefault("clone.method", DefaultCloneMethod)
	v.SetDefault("clone.depth", DefaultCloneDepth)
	v.SetDefault("clone.git_binary", DefaultGitBinary)
	v.SetDefault("clone.temp_prefix", DefaultTempPrefix)

	v.SetDefault("encoding.primary", DefaultPrimaryEncoding)
	v.SetDefault("encoding.fallback", DefaultFallbackEncoding)

	v.SetDefault("markdown.keywords", DefaultKeywords)
	v.SetDefault("markdown.progress", DefaultProgress)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("logging.verbose", false)
}

// Save writes cfg as YAML to path, creating parent directories as needed
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
