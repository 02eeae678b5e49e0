package domain

import "context"

// Cloner clones a remote repository into a local directory
type Cloner interface {
	// Name returns the clone method name
	Name() string
	// Clone clones url into destDir, which must not exist or be empty
	Clone(ctx context.Context, url, destDir string) error
}

// TextReader turns a file into text
type TextReader interface {
	// ReadText returns the file's text. Read failures are reported through
	// the boolean rather than an error so that callers keep going.
	ReadText(path string) (text string, ok bool)
}
