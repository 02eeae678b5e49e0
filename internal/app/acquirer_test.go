package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/tests/mocks"
	"github.com/quantmind-br/repoanalyzer/tests/testutil"
)

func newTestAcquirer(t *testing.T, cloner domain.Cloner) *Acquirer {
	t.Helper()
	return NewAcquirer(AcquirerOptions{
		Cloner:     cloner,
		TempPrefix: "repoanalyzer-acquirer-test-",
		Logger:     testutil.NewTestLogger(t),
	})
}

func TestAcquirer_Local(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t), "project")
	testutil.WriteFiles(t, root, map[string]string{"main.go": "package main"})

	repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput(root))
	require.NoError(t, err)
	defer repo.Close()

	assert.Equal(t, root, repo.Root)
	assert.Equal(t, "project", repo.Name)
	assert.Equal(t, domain.InputLocal, repo.Input.Kind)

	// closing a local repository never touches it
	require.NoError(t, repo.Close())
	assert.DirExists(t, root)
}

func TestAcquirer_LocalRelative(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.WriteFiles(t, base, map[string]string{"rel/file.txt": "x"})
	testutil.Chdir(t, base)

	repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput("rel"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(repo.Root))
	assert.Equal(t, "rel", repo.Name)
}

func TestAcquirer_LocalCurrentDirectory(t *testing.T) {
	base := filepath.Join(testutil.TempDir(t), "cwd-project")
	testutil.EnsureDir(t, base)
	testutil.Chdir(t, base)

	repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput("."))
	require.NoError(t, err)
	assert.Equal(t, "cwd-project", repo.Name)
}

func TestAcquirer_LocalErrors(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.WriteFiles(t, base, map[string]string{"file.txt": "x"})

	t.Run("not found", func(t *testing.T) {
		repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput(filepath.Join(base, "missing")))
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.ErrorIs(t, err, domain.ErrPathNotFound)
	})

	t.Run("not a directory", func(t *testing.T) {
		repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput(filepath.Join(base, "file.txt")))
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.ErrorIs(t, err, domain.ErrNotADirectory)
	})

	t.Run("blank input", func(t *testing.T) {
		repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput("   "))
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAcquirer_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	cloner := mocks.NewMockCloner(ctrl)

	url := "https://github.com/user/hello-world.git"
	var dest string
	cloner.EXPECT().Name().Return("mock").AnyTimes()
	cloner.EXPECT().
		Clone(gomock.Any(), url, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, destDir string) error {
			dest = destDir
			testutil.WriteFiles(t, destDir, map[string]string{"README.md": "# hello"})
			return nil
		})

	logger, logs := testutil.NewBufferLogger(t)
	acquirer := NewAcquirer(AcquirerOptions{
		Cloner:     cloner,
		TempPrefix: "repoanalyzer-acquirer-test-",
		Logger:     logger,
	})
	repo, err := acquirer.Acquire(context.Background(), ClassifyInput(url))
	require.NoError(t, err)

	// the clone itself is announced by the cloner
	assert.Contains(t, logs.String(), "Created temporary clone directory")
	assert.NotContains(t, logs.String(), "Cloning repository")

	assert.Equal(t, "hello-world", repo.Name)
	assert.Equal(t, dest, repo.Root)
	assert.Equal(t, "hello-world", filepath.Base(repo.Root))
	assert.FileExists(t, filepath.Join(repo.Root, "README.md"))

	tmpDir := filepath.Dir(repo.Root)
	assert.Contains(t, filepath.Base(tmpDir), "repoanalyzer-acquirer-test-")

	require.NoError(t, repo.Close())
	assert.NoDirExists(t, tmpDir)
}

func TestAcquirer_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cloner := mocks.NewMockCloner(ctrl)

	url := "https://github.com/user/missing"
	cloneErr := domain.NewCloneError(url, "mock", "fatal: repository not found", errors.New("exit status 128"))
	cloner.EXPECT().Name().Return("mock").AnyTimes()
	cloner.EXPECT().Clone(gomock.Any(), url, gomock.Any()).Return(cloneErr)

	repo, err := newTestAcquirer(t, cloner).Acquire(context.Background(), ClassifyInput(url))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assert.Contains(t, err.Error(), "repository not found")

	// the temp dir is still owned by the returned repository
	require.NotNil(t, repo)
	tmpDir := filepath.Dir(repo.Root)
	assert.DirExists(t, tmpDir)
	require.NoError(t, repo.Close())
	assert.NoDirExists(t, tmpDir)
}

func TestAcquirer_RemoteWithoutCloner(t *testing.T) {
	repo, err := newTestAcquirer(t, nil).Acquire(context.Background(), ClassifyInput("https://github.com/user/repo"))
	require.Error(t, err)
	assert.Nil(t, repo)
}

func TestNewAcquirer_Defaults(t *testing.T) {
	a := NewAcquirer(AcquirerOptions{})
	assert.NotEmpty(t, a.tempPrefix)
	assert.NotNil(t, a.logger)
}
