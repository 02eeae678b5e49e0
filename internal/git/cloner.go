package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// Clone method names
const (
	MethodExec  = "git"
	MethodGoGit = "go-git"
)

// ClonerOptions contains options for creating a cloner
type ClonerOptions struct {
	Method    string
	Depth     int
	GitBinary string
	Client    Client
	Progress  io.Writer
	Logger    *utils.Logger
}

// NewCloner returns the cloner for opts.Method
func NewCloner(opts ClonerOptions) (domain.Cloner, error) {
	switch opts.Method {
	case "", MethodExec:
		return NewExecCloner(opts), nil
	case MethodGoGit:
		return NewGoGitCloner(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCloneMethod, opts.Method)
	}
}

// ExecCloner clones by running the git command line client
type ExecCloner struct {
	binary string
	depth  int
	logger *utils.Logger
}

// NewExecCloner creates an ExecCloner
func NewExecCloner(opts ClonerOptions) *ExecCloner {
	binary := opts.GitBinary
	if binary == "" {
		binary = "git"
	}
	return &ExecCloner{
		binary: binary,
		depth:  opts.Depth,
		logger: opts.Logger,
	}
}

func (c *ExecCloner) Name() string {
	return MethodExec
}

// Args returns the command line arguments used to clone url into destDir
func (c *ExecCloner) Args(url, destDir string) []string {
	args := []string{"clone"}
	if c.depth > 0 {
		args = append(args, "--depth", strconv.Itoa(c.depth))
	}
	return append(args, "--", url, destDir)
}

// Clone runs git clone. On failure the returned error carries git's stderr.
func (c *ExecCloner) Clone(ctx context.Context, url, destDir string) error {
	if c.logger != nil {
		c.logger.Info().Str("url", url).Str("binary", c.binary).Msg("Cloning repository")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, c.Args(url, destDir)...)
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return domain.NewCloneError(url, c.Name(), stderr.String(), err)
	}

	if c.logger != nil {
		c.logger.Info().Str("path", destDir).Msg("Repository cloned successfully")
	}
	return nil
}

// GoGitCloner clones in-process with go-git
type GoGitCloner struct {
	client   Client
	depth    int
	progress io.Writer
	logger   *utils.Logger
}

// NewGoGitCloner creates a GoGitCloner. A nil opts.Client uses go-git directly.
func NewGoGitCloner(opts ClonerOptions) *GoGitCloner {
	client := opts.Client
	if client == nil {
		client = NewClient()
	}
	return &GoGitCloner{
		client:   client,
		depth:    opts.Depth,
		progress: opts.Progress,
		logger:   opts.Logger,
	}
}

func (c *GoGitCloner) Name() string {
	return MethodGoGit
}

// CloneOptions builds the go-git clone options for url
func (c *GoGitCloner) CloneOptions(url string) *git.CloneOptions {
	cloneOpts := &git.CloneOptions{
		URL:      url,
		Depth:    c.depth,
		Progress: c.progress,
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" && isHTTPURL(url) {
		cloneOpts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: token,
		}
	}
	return cloneOpts
}

// Clone clones url into destDir
func (c *GoGitCloner) Clone(ctx context.Context, url, destDir string) error {
	if c.logger != nil {
		c.logger.Info().Str("url", url).Msg("Cloning repository")
	}

	if _, err := c.client.PlainCloneContext(ctx, destDir, false, c.CloneOptions(url)); err != nil {
		return domain.NewCloneError(url, c.Name(), "", err)
	}

	if c.logger != nil {
		c.logger.Info().Str("path", destDir).Msg("Repository cloned successfully")
	}
	return nil
}

func isHTTPURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
