// Package git acquires remote repositories, either through the git command
// line client or in-process with go-git.
package git

import (
	"context"

	"github.com/go-git/go-git/v5"
)

// Client defines the go-git operations used by GoGitCloner
type Client interface {
	PlainCloneContext(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error)
}
