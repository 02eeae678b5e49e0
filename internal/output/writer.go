package output

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// Output naming
const (
	DirSuffix      = "_analysis"
	MarkdownSuffix = "_contents.md"
	TreeSuffix     = "_file_tree.txt"
)

// Stats counts what a serializer wrote
type Stats struct {
	Files       int
	Directories int
	Unreadable  int
}

// NewOutputSet computes the output paths for a repository name under baseDir
func NewOutputSet(baseDir, name string) domain.OutputSet {
	dir := filepath.Join(baseDir, name+DirSuffix)
	return domain.OutputSet{
		Dir:          dir,
		MarkdownPath: filepath.Join(dir, name+MarkdownSuffix),
		TreePath:     filepath.Join(dir, name+TreeSuffix),
	}
}

// Prepare creates the output directory if it does not exist yet
func Prepare(set domain.OutputSet) error {
	if err := os.MkdirAll(set.Dir, 0755); err != nil {
		return domain.NewOutputError("creating output directory", set.Dir, err)
	}
	return nil
}

// writeFile creates path (truncating an existing file) and streams render
// into it through a buffer
func writeFile(path string, render func(w io.Writer) error) error {
	if err := utils.EnsureDir(path); err != nil {
		return domain.NewOutputError("creating directory for", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return domain.NewOutputError("creating", path, err)
	}

	buf := bufio.NewWriter(file)
	if err := render(buf); err != nil {
		file.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return domain.NewOutputError("writing", path, err)
	}
	if err := file.Close(); err != nil {
		return domain.NewOutputError("writing", path, err)
	}
	return nil
}

// errWriter remembers the first write error so that rendering code can
// write unconditionally and check once
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
