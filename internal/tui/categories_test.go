package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{key: "output.base_dir", expected: "Output"},
		{key: "clone.depth", expected: "Clone"},
		{key: "encoding.fallback", expected: "Encoding"},
		{key: "markdown.keywords", expected: "Markdown"},
		{key: "logging.format", expected: "Logging"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			i := categoryForKey(tt.key)
			assert.GreaterOrEqual(t, i, 0)
			assert.Equal(t, tt.expected, Categories[i].Name)
		})
	}

	assert.Equal(t, -1, categoryForKey("cache.ttl"))
	assert.Equal(t, -1, categoryForKey(""))
}

func TestCategory_KeysAreKnown(t *testing.T) {
	values := FromConfig(defaultConfig())
	for _, c := range Categories {
		for _, key := range c.Keys {
			assert.NotEmpty(t, values.Get(key), key)
			assert.Equal(t, c.Name, Categories[categoryForKey(key)].Name, key)
		}
	}
}

func TestCategory_Changed(t *testing.T) {
	a := FromConfig(defaultConfig())
	b := a.clone()

	for _, c := range Categories {
		assert.False(t, c.Changed(a, b), c.ID)
	}

	b.Progress = !b.Progress
	for _, c := range Categories {
		assert.Equal(t, c.ID == "markdown", c.Changed(a, b), c.ID)
	}
}

func TestCategory_Summary(t *testing.T) {
	values := FromConfig(defaultConfig())

	assert.Equal(t, "primary=utf-8 fallback=iso-8859-1", Categories[2].Summary(values))
	assert.Equal(t, "keywords=def,class progress=true", Categories[3].Summary(values))
}

func TestCategories_HaveForms(t *testing.T) {
	values := FromConfig(defaultConfig())
	for _, c := range Categories {
		assert.NotEmpty(t, c.Description)
		assert.NotNil(t, GetFormForCategory(c.ID, values, false), c.ID)
		assert.NotNil(t, GetFormForCategory(c.ID, values, true), c.ID)
	}
	assert.Nil(t, GetFormForCategory("nonexistent", values, false))
}
