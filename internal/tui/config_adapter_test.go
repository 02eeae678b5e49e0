package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/domain"
)

func defaultConfig() *config.Config {
	return config.Default()
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Output: config.OutputConfig{BaseDir: "./reports"},
		Clone: config.CloneConfig{
			Method:     config.CloneMethodGoGit,
			Depth:      1,
			GitBinary:  "/usr/local/bin/git",
			TempPrefix: "tmp-",
		},
		Encoding: config.EncodingConfig{Primary: "utf-8", Fallback: "windows-1252"},
		Markdown: config.MarkdownConfig{Keywords: []string{"def", "class", "func"}, Progress: true},
		Logging:  config.LoggingConfig{Level: "debug", Format: "json"},
	}

	values := FromConfig(cfg)

	assert.Equal(t, "./reports", values.OutputBaseDir)
	assert.Equal(t, "go-git", values.CloneMethod)
	assert.Equal(t, "1", values.CloneDepth)
	assert.Equal(t, "/usr/local/bin/git", values.CloneGitBinary)
	assert.Equal(t, "tmp-", values.CloneTempPrefix)
	assert.Equal(t, "utf-8", values.PrimaryEncoding)
	assert.Equal(t, "windows-1252", values.FallbackEncoding)
	assert.Equal(t, "def\nclass\nfunc", values.Keywords)
	assert.True(t, values.Progress)
	assert.Equal(t, "debug", values.LogLevel)
	assert.Equal(t, "json", values.LogFormat)
}

func TestToConfig_RoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Clone.Depth = 5
	cfg.Markdown.Keywords = []string{"fn"}

	out, err := FromConfig(cfg).ToConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, out)
}

func TestToConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*ConfigValues)
		check   func(*testing.T, *config.Config)
		wantErr bool
	}{
		{
			name:   "empty values get defaults",
			modify: func(v *ConfigValues) { *v = ConfigValues{} },
			check: func(t *testing.T, c *config.Config) {
				expected := config.Default()
				expected.Markdown.Progress = false
				assert.Equal(t, expected, c)
			},
		},
		{
			name: "keywords are split and trimmed",
			modify: func(v *ConfigValues) {
				v.Keywords = " fn \n\n struct\n"
			},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, []string{"fn", "struct"}, c.Markdown.Keywords)
			},
		},
		{
			name:   "depth with spaces",
			modify: func(v *ConfigValues) { v.CloneDepth = " 2 " },
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 2, c.Clone.Depth)
			},
		},
		{
			name:    "invalid depth",
			modify:  func(v *ConfigValues) { v.CloneDepth = "deep" },
			wantErr: true,
		},
		{
			name:    "invalid clone method",
			modify:  func(v *ConfigValues) { v.CloneMethod = "svn" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := FromConfig(defaultConfig())
			tt.modify(values)

			cfg, err := values.ToConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestToConfig_DepthValidationError(t *testing.T) {
	values := FromConfig(defaultConfig())
	values.CloneDepth = "deep"

	_, err := values.ToConfig()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "clone.depth", verr.Field)
	assert.Contains(t, verr.Message, `"deep"`)
}

func TestConfigValues_Get(t *testing.T) {
	values := FromConfig(defaultConfig())
	values.Keywords = "fn\n  struct \n"
	values.Progress = false

	assert.Equal(t, ".", values.Get("output.base_dir"))
	assert.Equal(t, "git", values.Get("clone.method"))
	assert.Equal(t, "0", values.Get("clone.depth"))
	assert.Equal(t, "fn,struct", values.Get("markdown.keywords"))
	assert.Equal(t, "false", values.Get("markdown.progress"))
	assert.Equal(t, "pretty", values.Get("logging.format"))
	assert.Empty(t, values.Get("no.such.key"))
}
