package output

import (
	"io"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// IndentWidth is the number of spaces per nesting level in the file tree
const IndentWidth = 4

// TreeWriter writes the indented directory listing
type TreeWriter struct {
	walker *Walker
	logger *utils.Logger
}

// NewTreeWriter creates a TreeWriter. logger may be nil.
func NewTreeWriter(walker *Walker, logger *utils.Logger) *TreeWriter {
	if walker == nil {
		walker = NewWalker(logger)
	}
	return &TreeWriter{walker: walker, logger: logger}
}

// Write lists root into the file at outputPath
func (t *TreeWriter) Write(root, outputPath string) (Stats, error) {
	if t.logger != nil {
		t.logger.Info().Str("file", outputPath).Msg("Creating file tree")
	}

	var stats Stats
	err := writeFile(outputPath, func(w io.Writer) error {
		var err error
		stats, err = t.Render(root, w)
		if err != nil {
			return domain.NewOutputError("writing", outputPath, err)
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	if t.logger != nil {
		t.logger.Info().
			Int("directories", stats.Directories).
			Int("files", stats.Files).
			Msg("File tree created successfully")
	}
	return stats, nil
}

// Render writes the listing of root to w. Each directory is written as its
// base name plus "/", indented by its depth; its files follow one level
// deeper.
func (t *TreeWriter) Render(root string, w io.Writer) (Stats, error) {
	var stats Stats
	ew := &errWriter{w: w}

	err := t.walker.Walk(root, func(dir domain.DirEntry) error {
		stats.Directories++
		ew.WriteString(indent(dir.Depth) + dir.Name + "/\n")

		fileIndent := indent(dir.Depth + 1)
		for _, f := range dir.Files {
			stats.Files++
			ew.WriteString(fileIndent + baseName(f.RelativePath) + "\n")
		}
		return ew.err
	})
	return stats, err
}

func indent(depth int) string {
	return strings.Repeat(" ", IndentWidth*depth)
}

func baseName(rel string) string {
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
