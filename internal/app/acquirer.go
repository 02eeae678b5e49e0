package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// Acquirer turns a classified input into a local repository root
type Acquirer struct {
	cloner     domain.Cloner
	tempPrefix string
	logger     *utils.Logger
}

// AcquirerOptions contains options for creating an Acquirer
type AcquirerOptions struct {
	Cloner     domain.Cloner
	TempPrefix string
	Logger     *utils.Logger
}

// NewAcquirer creates an Acquirer
func NewAcquirer(opts AcquirerOptions) *Acquirer {
	prefix := opts.TempPrefix
	if prefix == "" {
		prefix = config.DefaultTempPrefix
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Acquirer{
		cloner:     opts.Cloner,
		tempPrefix: prefix,
		logger:     logger,
	}
}

// Acquire clones remote inputs into a fresh temporary directory and resolves
// local inputs to an absolute path. The returned repository must be closed
// to release the temporary clone.
func (a *Acquirer) Acquire(ctx context.Context, input domain.InputSpec) (*domain.Repository, error) {
	if strings.TrimSpace(input.Raw) == "" {
		return nil, fmt.Errorf("%w: empty repository path or URL", domain.ErrInvalidInput)
	}
	if input.IsRemote() {
		return a.clone(ctx, input)
	}
	return a.open(input)
}

func (a *Acquirer) clone(ctx context.Context, input domain.InputSpec) (*domain.Repository, error) {
	if a.cloner == nil {
		return nil, fmt.Errorf("no cloner configured for %s", input.Raw)
	}

	tmpDir, err := os.MkdirTemp("", a.tempPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	cleanup := func() error {
		a.logger.Debug().Str("path", tmpDir).Msg("Removing temporary clone")
		return os.RemoveAll(tmpDir)
	}

	name := RepoNameFromURL(input.Raw)
	root := filepath.Join(tmpDir, name)
	repo := domain.NewRepository(root, name, input, cleanup)

	a.logger.Debug().
		Str("path", root).
		Str("cloner", a.cloner.Name()).
		Msg("Created temporary clone directory")

	if err := a.cloner.Clone(ctx, input.Raw, root); err != nil {
		// the repository is returned so the caller can release the temp dir
		return repo, err
	}
	return repo, nil
}

func (a *Acquirer) open(input domain.InputSpec) (*domain.Repository, error) {
	root, err := filepath.Abs(utils.ExpandPath(input.Raw))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", input.Raw, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPathNotFound, input.Raw)
		}
		return nil, fmt.Errorf("failed to access %s: %w", input.Raw, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, input.Raw)
	}

	a.logger.Debug().Str("path", root).Msg("Using local repository")
	return domain.NewRepository(root, filepath.Base(root), input, nil), nil
}
