package tui

import "strings"

// Category is one top-level section of the configuration file
type Category struct {
	ID          string
	Name        string
	Description string
	// Keys are the config keys edited by the category's form
	Keys []string
}

var Categories = []Category{
	{
		ID:          "output",
		Name:        "Output",
		Description: "Where the <name>_analysis directory is created",
		Keys:        []string{"output.base_dir"},
	},
	{
		ID:          "clone",
		Name:        "Clone",
		Description: "How remote repositories are cloned",
		Keys:        []string{"clone.method", "clone.depth", "clone.git_binary", "clone.temp_prefix"},
	},
	{
		ID:          "encoding",
		Name:        "Encoding",
		Description: "Character encodings used to read files",
		Keys:        []string{"encoding.primary", "encoding.fallback"},
	},
	{
		ID:          "markdown",
		Name:        "Markdown",
		Description: "Highlighted keywords and progress display",
		Keys:        []string{"markdown.keywords", "markdown.progress"},
	},
	{
		ID:          "logging",
		Name:        "Logging",
		Description: "Log level and format",
		Keys:        []string{"logging.level", "logging.format"},
	},
}

// categoryForKey returns the index of the category that edits key, or -1
func categoryForKey(key string) int {
	section, _, _ := strings.Cut(key, ".")
	for i, c := range Categories {
		if c.ID == section {
			return i
		}
	}
	return -1
}

// Changed reports whether any key of the category differs between a and b
func (c Category) Changed(a, b *ConfigValues) bool {
	for _, key := range c.Keys {
		if a.Get(key) != b.Get(key) {
			return true
		}
	}
	return false
}

// Summary renders the category's current values on one line, e.g.
// "method=git depth=0"
func (c Category) Summary(v *ConfigValues) string {
	parts := make([]string, 0, len(c.Keys))
	for _, key := range c.Keys {
		_, field, _ := strings.Cut(key, ".")
		parts = append(parts, field+"="+v.Get(key))
	}
	return strings.Join(parts, " ")
}
