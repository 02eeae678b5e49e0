package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/tests/testutil"
)

func TestTreeWriter_Render(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t), "repo")
	testutil.WriteFiles(t, root, map[string]string{
		"a.py":      "def f():\n    pass",
		"sub/b.txt": "hello",
	})

	var buf bytes.Buffer
	stats, err := NewTreeWriter(nil, testutil.NewTestLogger(t)).Render(root, &buf)
	require.NoError(t, err)

	expected := "repo/\n" +
		"    a.py\n" +
		"    sub/\n" +
		"        b.txt\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, Stats{Files: 2, Directories: 2}, stats)
}

func TestTreeWriter_RenderNested(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t), "proj")
	testutil.WriteFiles(t, root, map[string]string{
		"README.md":            "",
		"cmd/app/main.go":      "",
		"internal/x/y/z/deep":  "",
		"internal/x/readme.md": "",
	})
	testutil.EnsureDir(t, filepath.Join(root, "docs"))

	var buf bytes.Buffer
	stats, err := NewTreeWriter(nil, nil).Render(root, &buf)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"proj/",
		"    README.md",
		"    cmd/",
		"        app/",
		"            main.go",
		"    docs/",
		"    internal/",
		"        x/",
		"            readme.md",
		"            y/",
		"                z/",
		"                    deep",
	}, "\n") + "\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, 4, stats.Files)
	assert.Equal(t, 8, stats.Directories)
}

// Every file gets exactly one line and every directory, including the
// root, exactly one line, each indented by its depth.
func TestTreeWriter_LineCounts(t *testing.T) {
	root := testutil.TempDir(t)
	files := map[string]string{}
	for _, rel := range []string{
		"f0", "f1",
		"d1/f2", "d1/f3", "d1/d2/f4",
		"d1/d2/d3/f5", "d1/d2/d3/f6", "e1/f7",
	} {
		files[rel] = rel
	}
	testutil.WriteFiles(t, root, files)

	var buf bytes.Buffer
	stats, err := NewTreeWriter(nil, nil).Render(root, &buf)
	require.NoError(t, err)

	var dirLines, fileLines int
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		indentLen := len(line) - len(trimmed)
		assert.Zero(t, indentLen%IndentWidth, "line %q", line)

		if strings.HasSuffix(trimmed, "/") {
			dirLines++
		} else {
			fileLines++
			assert.NotZero(t, indentLen, "file line %q must be nested", line)
		}
	}
	assert.Equal(t, len(files), fileLines)
	assert.Equal(t, 5, dirLines)
	assert.Equal(t, Stats{Files: 8, Directories: 5}, stats)
}

func TestTreeWriter_Write(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t), "repo")
	testutil.WriteFiles(t, root, map[string]string{"only.txt": "x"})
	out := filepath.Join(testutil.TempDir(t), "nested", "repo_file_tree.txt")

	stats, err := NewTreeWriter(nil, testutil.NewTestLogger(t)).Write(root, out)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "repo/\n    only.txt\n", string(content))
}

func TestTreeWriter_WriteOverwrites(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t), "repo")
	testutil.WriteFiles(t, root, map[string]string{"new.txt": "x"})
	out := filepath.Join(testutil.TempDir(t), "tree.txt")
	require.NoError(t, os.WriteFile(out, []byte("stale content that is longer than the tree\n"), 0644))

	_, err := NewTreeWriter(nil, nil).Write(root, out)
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "repo/\n    new.txt\n", string(content))
}

func TestTreeWriter_WriteFailure(t *testing.T) {
	root := testutil.TempDir(t)
	blocker := filepath.Join(testutil.TempDir(t), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not dir"), 0644))

	_, err := NewTreeWriter(nil, nil).Write(root, filepath.Join(blocker, "tree.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}
