package git

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoanalyzer/tests/testutil"
)

// TestNewClient tests creating a new client
func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}

// TestRealClient_PlainCloneContext tests cloning repository
func TestRealClient_PlainCloneContext(t *testing.T) {
	t.Run("clones local repository", func(t *testing.T) {
		testutil.RequireGitBinary(t)
		src := testutil.InitGitRepo(t, map[string]string{"README.md": "# hello\n"})

		client := NewClient()
		dest := t.TempDir()
		repo, err := client.PlainCloneContext(context.Background(), dest, false, &git.CloneOptions{URL: src})
		require.NoError(t, err)
		assert.NotNil(t, repo)
		assert.FileExists(t, filepath.Join(dest, "README.md"))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		client := NewClient()
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		opts := &git.CloneOptions{
			URL: "https://github.com/git-fixtures/basic.git",
		}

		_, err := client.PlainCloneContext(ctx, t.TempDir(), false, opts)
		assert.Error(t, err)
	})
}

// TestClientInterface verifies RealClient implements Client interface
func TestClientInterface(t *testing.T) {
	var client Client = NewClient()
	assert.NotNil(t, client)
	_, ok := client.(*RealClient)
	assert.True(t, ok)
}
