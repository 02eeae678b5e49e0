package testutil

import (
	"os/exec"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// InitGitRepo creates a git repository containing files with a single
// commit and returns its path.
func InitGitRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	WriteFiles(t, dir, files)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))

	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "repoanalyzer",
			Email: "tests@repoanalyzer.invalid",
			When:  time.Unix(1700000000, 0),
		},
	})
	require.NoError(t, err)

	return dir
}

// RequireGitBinary skips the test when the git command line client is not installed
func RequireGitBinary(t *testing.T) string {
	t.Helper()

	path, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git binary not available")
	}
	return path
}
