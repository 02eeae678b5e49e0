package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/domain"
)

// ConfigValues holds form values that map to Config struct.
// Numeric and list fields are stored as strings for form editing.
type ConfigValues struct {
	OutputBaseDir string

	CloneMethod     string
	CloneDepth      string
	CloneGitBinary  string
	CloneTempPrefix string

	PrimaryEncoding  string
	FallbackEncoding string

	// Keywords holds one keyword per line
	Keywords string
	Progress bool

	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		OutputBaseDir: cfg.Output.BaseDir,

		CloneMethod:     cfg.Clone.Method,
		CloneDepth:      strconv.Itoa(cfg.Clone.Depth),
		CloneGitBinary:  cfg.Clone.GitBinary,
		CloneTempPrefix: cfg.Clone.TempPrefix,

		PrimaryEncoding:  cfg.Encoding.Primary,
		FallbackEncoding: cfg.Encoding.Fallback,

		Keywords: strings.Join(cfg.Markdown.Keywords, "\n"),
		Progress: cfg.Markdown.Progress,

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a validated Config
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	depth, err := parseIntOrDefault(v.CloneDepth, config.DefaultCloneDepth)
	if err != nil {
		return nil, domain.NewValidationError("clone.depth", fmt.Sprintf("%q is not a number", v.CloneDepth))
	}

	cfg := &config.Config{
		Output: config.OutputConfig{
			BaseDir: strings.TrimSpace(v.OutputBaseDir),
		},
		Clone: config.CloneConfig{
			Method:     v.CloneMethod,
			Depth:      depth,
			GitBinary:  strings.TrimSpace(v.CloneGitBinary),
			TempPrefix: strings.TrimSpace(v.CloneTempPrefix),
		},
		Encoding: config.EncodingConfig{
			Primary:  strings.TrimSpace(v.PrimaryEncoding),
			Fallback: strings.TrimSpace(v.FallbackEncoding),
		},
		Markdown: config.MarkdownConfig{
			Keywords: splitLines(v.Keywords),
			Progress: v.Progress,
		},
		Logging: config.LoggingConfig{
			Level:  v.LogLevel,
			Format: v.LogFormat,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the value of a config key as shown in the editor. Keywords
// are joined with commas. Unknown keys give "".
func (v *ConfigValues) Get(key string) string {
	switch key {
	case "output.base_dir":
		return v.OutputBaseDir
	case "clone.method":
		return v.CloneMethod
	case "clone.depth":
		return v.CloneDepth
	case "clone.git_binary":
		return v.CloneGitBinary
	case "clone.temp_prefix":
		return v.CloneTempPrefix
	case "encoding.primary":
		return v.PrimaryEncoding
	case "encoding.fallback":
		return v.FallbackEncoding
	case "markdown.keywords":
		return strings.Join(splitLines(v.Keywords), ",")
	case "markdown.progress":
		return strconv.FormatBool(v.Progress)
	case "logging.level":
		return v.LogLevel
	case "logging.format":
		return v.LogFormat
	}
	return ""
}

func (v *ConfigValues) clone() *ConfigValues {
	c := *v
	return &c
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
