package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// VisitFunc is called once per directory, before any of its subdirectories
type VisitFunc func(dir domain.DirEntry) error

// Walker traverses a directory tree top-down. Within a directory entries are
// taken in lexical order, files first, then subdirectories. Symbolic links to
// directories are neither listed nor followed; other links are files.
// Directories that cannot be listed are skipped with a warning.
type Walker struct {
	logger *utils.Logger
}

// NewWalker creates a Walker. logger may be nil.
func NewWalker(logger *utils.Logger) *Walker {
	return &Walker{logger: logger}
}

// Walk visits root and every directory beneath it
func (w *Walker) Walk(root string, fn VisitFunc) error {
	return w.visit(root, root, fn)
}

// CountFiles returns the number of files Walk would report under root
func (w *Walker) CountFiles(root string) (int, error) {
	total := 0
	err := w.Walk(root, func(dir domain.DirEntry) error {
		total += len(dir.Files)
		return nil
	})
	return total, err
}

func (w *Walker) visit(root, path string, fn VisitFunc) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if w.logger != nil {
			w.logger.Warn().Err(err).Str("dir", path).Msg("Skipping unreadable directory")
		}
		return nil
	}

	rel := relativePath(root, path)
	depth := Depth(rel)
	dir := domain.DirEntry{
		Path:         path,
		RelativePath: rel,
		Name:         filepath.Base(path),
		Depth:        depth,
	}

	var subdirs []string
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entryPath)
		case entry.Type()&os.ModeSymlink != 0 && utils.DirExists(entryPath):
			// not followed
		default:
			dir.Files = append(dir.Files, domain.FileEntry{
				Path:         entryPath,
				RelativePath: relativePath(root, entryPath),
				Depth:        depth + 1,
			})
		}
	}

	if err := fn(dir); err != nil {
		return err
	}

	for _, sub := range subdirs {
		if err := w.visit(root, sub, fn); err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the nesting level of a slash separated path relative to
// the root: 0 for the root itself, one more per path separator below it.
func Depth(rel string) int {
	if rel == "." || rel == "" {
		return 0
	}
	return strings.Count(rel, "/") + 1
}

func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
