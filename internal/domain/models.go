package domain

import "time"

// InputKind tells how the user input is acquired
type InputKind string

const (
	InputRemote InputKind = "remote"
	InputLocal  InputKind = "local"
)

// InputSpec is the classified user input
type InputSpec struct {
	Kind InputKind
	Raw  string
}

// IsRemote reports whether the input must be cloned
func (s InputSpec) IsRemote() bool {
	return s.Kind == InputRemote
}

// Repository is a local, readable repository root
type Repository struct {
	Root  string
	Name  string
	Input InputSpec

	cleanup func() error
}

// NewRepository creates a Repository. cleanup may be nil.
func NewRepository(root, name string, input InputSpec, cleanup func() error) *Repository {
	return &Repository{
		Root:    root,
		Name:    name,
		Input:   input,
		cleanup: cleanup,
	}
}

// Close releases the scoped resources owned by the repository (the temporary
// clone directory for remote inputs). It is safe to call more than once.
func (r *Repository) Close() error {
	if r == nil || r.cleanup == nil {
		return nil
	}
	cleanup := r.cleanup
	r.cleanup = nil
	return cleanup()
}

// FileEntry is a file found during traversal
type FileEntry struct {
	Path         string
	RelativePath string
	Depth        int
}

// DirEntry is a directory visited during traversal, with its files in
// traversal order
type DirEntry struct {
	Path         string
	RelativePath string
	Name         string
	Depth        int
	Files        []FileEntry
}

// OutputSet describes the generated artifacts of one run
type OutputSet struct {
	Dir          string
	MarkdownPath string
	TreePath     string
}

// Result summarizes a completed run
type Result struct {
	Repository  string
	Output      OutputSet
	Files       int
	Directories int
	Unreadable  int
	Duration    time.Duration
}
