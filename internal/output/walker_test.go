package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/tests/testutil"
)

type visit struct {
	rel   string
	depth int
	files []string
}

func collect(t *testing.T, root string) []visit {
	t.Helper()

	var visits []visit
	err := NewWalker(testutil.NewTestLogger(t)).Walk(root, func(dir domain.DirEntry) error {
		v := visit{rel: dir.RelativePath, depth: dir.Depth}
		for _, f := range dir.Files {
			v.files = append(v.files, f.RelativePath)
			assert.Equal(t, dir.Depth+1, f.Depth)
		}
		visits = append(visits, v)
		return nil
	})
	require.NoError(t, err)
	return visits
}

func TestWalker_Walk(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.WriteFiles(t, root, map[string]string{
		"z.txt":         "z",
		"B.txt":         "b",
		"a/x.txt":       "x",
		"a/deep/y.txt":  "y",
		"c/w.txt":       "w",
		"c/inner/v.txt": "v",
	})
	testutil.EnsureDir(t, filepath.Join(root, "empty"))

	visits := collect(t, root)

	assert.Equal(t, []visit{
		{rel: ".", depth: 0, files: []string{"B.txt", "z.txt"}},
		{rel: "a", depth: 1, files: []string{"a/x.txt"}},
		{rel: "a/deep", depth: 2, files: []string{"a/deep/y.txt"}},
		{rel: "c", depth: 1, files: []string{"c/w.txt"}},
		{rel: "c/inner", depth: 2, files: []string{"c/inner/v.txt"}},
		{rel: "empty", depth: 1},
	}, visits)
}

func TestWalker_DirEntryFields(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t), "project")
	testutil.WriteFiles(t, root, map[string]string{"pkg/main.go": "package main"})

	var dirs []domain.DirEntry
	err := NewWalker(nil).Walk(root, func(dir domain.DirEntry) error {
		dirs = append(dirs, dir)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, dirs, 2)

	assert.Equal(t, "project", dirs[0].Name)
	assert.Equal(t, root, dirs[0].Path)
	assert.Empty(t, dirs[0].Files)

	assert.Equal(t, "pkg", dirs[1].Name)
	require.Len(t, dirs[1].Files, 1)
	assert.Equal(t, filepath.Join(root, "pkg", "main.go"), dirs[1].Files[0].Path)
}

func TestWalker_Symlinks(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.WriteFiles(t, root, map[string]string{
		"real/file.txt": "content",
		"target.txt":    "target",
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "dirlink")))
	require.NoError(t, os.Symlink(filepath.Join(root, "target.txt"), filepath.Join(root, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	visits := collect(t, root)

	assert.Equal(t, []visit{
		{rel: ".", depth: 0, files: []string{"dangling", "filelink", "target.txt"}},
		{rel: "real", depth: 1, files: []string{"real/file.txt"}},
	}, visits)
}

func TestWalker_CallbackErrorStopsWalk(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.WriteFiles(t, root, map[string]string{"a/1.txt": "1", "b/2.txt": "2"})

	stop := errors.New("stop")
	calls := 0
	err := NewWalker(nil).Walk(root, func(dir domain.DirEntry) error {
		calls++
		if dir.RelativePath == "a" {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
}

func TestWalker_CountFiles(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.WriteFiles(t, root, map[string]string{
		"1.txt":       "",
		"a/2.txt":     "",
		"a/b/3.txt":   "",
		"a/b/c/4.txt": "",
	})

	total, err := NewWalker(nil).CountFiles(root)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestWalker_MissingRoot(t *testing.T) {
	logger, buf := testutil.NewBufferLogger(t)
	calls := 0
	err := NewWalker(logger).Walk(filepath.Join(testutil.TempDir(t), "missing"), func(domain.DirEntry) error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Zero(t, calls)
	assert.Contains(t, buf.String(), "Skipping unreadable directory")
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth("."))
	assert.Equal(t, 0, Depth(""))
	assert.Equal(t, 1, Depth("sub"))
	assert.Equal(t, 2, Depth("sub/inner"))
	assert.Equal(t, 3, Depth("a/b/c"))
}
