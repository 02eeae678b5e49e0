package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/repoanalyzer/internal/config"
)

func CreateOutputForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("base_dir").
				Title("Base Directory").
				Description("Directory in which <name>_analysis is created").
				Value(&values.OutputBaseDir).
				Placeholder(config.DefaultOutputBaseDir),
		),
	)
}

func CreateCloneForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("method").
				Title("Clone Method").
				Description("Client used to clone remote repositories").
				Options(
					huh.NewOption("git CLI", config.CloneMethodGit),
					huh.NewOption("go-git (built-in)", config.CloneMethodGoGit),
				).
				Value(&values.CloneMethod).
				Validate(ValidateCloneMethod),

			huh.NewInput().
				Key("depth").
				Title("Clone Depth").
				Description("Shallow clone depth (0 = full history)").
				Value(&values.CloneDepth).
				Placeholder("0").
				Validate(ValidateNonNegativeInt),

			huh.NewInput().
				Key("git_binary").
				Title("Git Binary").
				Description("git executable used by the git CLI method").
				Value(&values.CloneGitBinary).
				Placeholder(config.DefaultGitBinary),

			huh.NewInput().
				Key("temp_prefix").
				Title("Temp Prefix").
				Description("Name prefix of temporary clone directories").
				Value(&values.CloneTempPrefix).
				Placeholder(config.DefaultTempPrefix),
		),
	)
}

func CreateEncodingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("primary").
				Title("Primary Encoding").
				Description("Encoding tried first when reading files").
				Value(&values.PrimaryEncoding).
				Placeholder(config.DefaultPrimaryEncoding).
				Validate(ValidateEncoding),

			huh.NewInput().
				Key("fallback").
				Title("Fallback Encoding").
				Description("Used when the primary encoding fails (should accept any byte)").
				Value(&values.FallbackEncoding).
				Placeholder(config.DefaultFallbackEncoding).
				Validate(ValidateEncoding),
		),
	)
}

func CreateMarkdownForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("keywords").
				Title("Definition Keywords").
				Description("Lines starting with one of these keywords are bolded (one per line)").
				Value(&values.Keywords).
				Validate(ValidateKeywords),

			huh.NewConfirm().
				Key("progress").
				Title("Show Progress").
				Description("Display a progress bar while writing the contents document").
				Value(&values.Progress),
		),
	)
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to display").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel).
				Validate(ValidateLogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
				).
				Value(&values.LogFormat).
				Validate(ValidateLogFormat),
		),
	)
}

// GetFormForCategory returns the form editing the category's keys in
// values, or nil for an unknown category
func GetFormForCategory(category string, values *ConfigValues, accessible bool) *huh.Form {
	var form *huh.Form
	switch category {
	case "output":
		form = CreateOutputForm(values)
	case "clone":
		form = CreateCloneForm(values)
	case "encoding":
		form = CreateEncodingForm(values)
	case "markdown":
		form = CreateMarkdownForm(values)
	case "logging":
		form = CreateLoggingForm(values)
	default:
		return nil
	}
	return form.WithTheme(formTheme(accessible)).WithAccessible(accessible)
}
