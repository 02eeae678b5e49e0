package output

import (
	"io"

	"github.com/quantmind-br/repoanalyzer/internal/converter"
	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// MarkdownWriter writes every file under a root into one markdown document
type MarkdownWriter struct {
	walker      *Walker
	reader      domain.TextReader
	highlighter *converter.Highlighter
	progress    io.Writer
	logger      *utils.Logger
}

// MarkdownWriterOptions contains options for creating a MarkdownWriter
type MarkdownWriterOptions struct {
	Walker *Walker
	// Reader defaults to a utf-8/iso-8859-1 converter.Decoder
	Reader domain.TextReader
	// Highlighter may be nil, in which case content is written unchanged
	Highlighter *converter.Highlighter
	// Progress receives the progress bar; nil disables it
	Progress io.Writer
	Logger   *utils.Logger
}

// NewMarkdownWriter creates a MarkdownWriter
func NewMarkdownWriter(opts MarkdownWriterOptions) *MarkdownWriter {
	walker := opts.Walker
	if walker == nil {
		walker = NewWalker(opts.Logger)
	}
	reader := opts.Reader
	if reader == nil {
		// the default encodings always resolve
		reader, _ = converter.NewDecoder(converter.DecoderOptions{Logger: opts.Logger})
	}
	return &MarkdownWriter{
		walker:      walker,
		reader:      reader,
		highlighter: opts.Highlighter,
		progress:    opts.Progress,
		logger:      opts.Logger,
	}
}

// Write renders root into the file at outputPath
func (m *MarkdownWriter) Write(root, outputPath string) (Stats, error) {
	if m.logger != nil {
		m.logger.Info().Str("file", outputPath).Msg("Creating markdown file")
	}

	var stats Stats
	err := writeFile(outputPath, func(w io.Writer) error {
		var err error
		stats, err = m.Render(root, w)
		if err != nil {
			return domain.NewOutputError("writing", outputPath, err)
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	if m.logger != nil {
		m.logger.Info().
			Int("files", stats.Files).
			Int("unreadable", stats.Unreadable).
			Msg("Markdown file created successfully")
	}
	return stats, nil
}

// Render writes one section per file under root to w:
//
//	# <relative path>
//
//	```
//	<highlighted content>
//	```
//
//	---
//
// Files that cannot be read get a placeholder describing the error.
func (m *MarkdownWriter) Render(root string, w io.Writer) (Stats, error) {
	var stats Stats

	total, err := m.walker.CountFiles(root)
	if err != nil {
		return stats, err
	}

	var bar interface{ Add(int) error }
	if m.progress != nil && total > 0 {
		bar = utils.NewProgressBar(m.progress, total, utils.DescWriting)
	}

	ew := &errWriter{w: w}
	err = m.walker.Walk(root, func(dir domain.DirEntry) error {
		stats.Directories++
		for _, f := range dir.Files {
			ew.WriteString("# " + f.RelativePath + "\n\n")

			content, ok := m.reader.ReadText(f.Path)
			if !ok {
				stats.Unreadable++
			}
			content = m.highlighter.Highlight(content)

			ew.WriteString("```\n" + content + "\n```\n\n")
			ew.WriteString("---\n\n")
			if ew.err != nil {
				return ew.err
			}

			stats.Files++
			if bar != nil {
				_ = bar.Add(1)
			}
			if m.logger != nil {
				m.logger.Debug().
					Str("file", f.RelativePath).
					Int("processed", stats.Files).
					Int("total", total).
					Msg("Processed file")
			}
		}
		return nil
	})
	return stats, err
}
