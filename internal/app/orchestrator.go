package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/converter"
	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/git"
	"github.com/quantmind-br/repoanalyzer/internal/manifest"
	"github.com/quantmind-br/repoanalyzer/internal/output"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// Orchestrator coordinates acquisition and the generation of both artifacts
type Orchestrator struct {
	config   *config.Config
	logger   *utils.Logger
	acquirer *Acquirer
	markdown *output.MarkdownWriter
	tree     *output.TreeWriter
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	// Logger overrides the logger built from Config.Logging
	Logger *utils.Logger
	// Cloner overrides the cloner selected by Config.Clone.Method
	Cloner domain.Cloner
	// Progress receives the progress bar when Config.Markdown.Progress is set;
	// defaults to stderr
	Progress io.Writer
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := config.DefaultLogLevel
		logFormat := config.DefaultLogFormat
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: cfg.Logging.Verbose,
		})
	}

	decoder, err := converter.NewDecoder(converter.DecoderOptions{
		Primary:  cfg.Encoding.Primary,
		Fallback: cfg.Encoding.Fallback,
		Logger:   logger.WithComponent("reader"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create content reader: %w", err)
	}

	cloner := opts.Cloner
	if cloner == nil {
		cloner, err = git.NewCloner(git.ClonerOptions{
			Method:    cfg.Clone.Method,
			Depth:     cfg.Clone.Depth,
			GitBinary: cfg.Clone.GitBinary,
			Logger:    logger.WithComponent("cloner"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create cloner: %w", err)
		}
	}

	var progress io.Writer
	if cfg.Markdown.Progress {
		progress = opts.Progress
		if progress == nil {
			progress = os.Stderr
		}
	}

	walker := output.NewWalker(logger.WithComponent("walker"))

	return &Orchestrator{
		config: cfg,
		logger: logger,
		acquirer: NewAcquirer(AcquirerOptions{
			Cloner:     cloner,
			TempPrefix: cfg.Clone.TempPrefix,
			Logger:     logger.WithComponent("acquirer"),
		}),
		markdown: output.NewMarkdownWriter(output.MarkdownWriterOptions{
			Walker:      walker,
			Reader:      decoder,
			Highlighter: converter.NewHighlighter(cfg.Markdown.Keywords),
			Progress:    progress,
			Logger:      logger.WithComponent("markdown"),
		}),
		tree: output.NewTreeWriter(walker, logger.WithComponent("tree")),
	}, nil
}

// Run acquires the repository named by input and writes its contents
// document and file tree
func (o *Orchestrator) Run(ctx context.Context, input string) (*domain.Result, error) {
	return o.run(ctx, input, o.config.Output.BaseDir)
}

func (o *Orchestrator) run(ctx context.Context, input, outputBase string) (*domain.Result, error) {
	startTime := time.Now()

	spec := ClassifyInput(input)
	o.logger.Info().
		Str("input", spec.Raw).
		Str("kind", string(spec.Kind)).
		Msg("Starting repository analysis")

	repo, err := o.acquirer.Acquire(ctx, spec)
	if repo != nil {
		defer func() {
			if cerr := repo.Close(); cerr != nil {
				o.logger.Warn().Err(cerr).Msg("Failed to remove temporary clone")
			}
		}()
	}
	if err != nil {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Analysis cancelled")
			return nil, ctx.Err()
		}
		return nil, err
	}

	logger := o.logger.WithRepository(repo.Name)

	baseDir, err := filepath.Abs(utils.ExpandPath(outputBase))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	set := output.NewOutputSet(baseDir, repo.Name)
	if err := output.Prepare(set); err != nil {
		return nil, err
	}

	mdStats, err := o.markdown.Write(repo.Root, set.MarkdownPath)
	if err != nil {
		return nil, err
	}
	if _, err := o.tree.Write(repo.Root, set.TreePath); err != nil {
		return nil, err
	}

	result := &domain.Result{
		Repository:  repo.Name,
		Output:      set,
		Files:       mdStats.Files,
		Directories: mdStats.Directories,
		Unreadable:  mdStats.Unreadable,
		Duration:    time.Since(startTime),
	}

	logger.Info().
		Str("output", set.Dir).
		Int("files", result.Files).
		Int("directories", result.Directories).
		Int("unreadable", result.Unreadable).
		Dur("duration", result.Duration).
		Msg("Analysis complete")

	return result, nil
}

// ManifestResult represents the result of processing one manifest source
type ManifestResult struct {
	Source manifest.Source
	Result *domain.Result
	Error  error
}

// RunManifest analyzes every source of the manifest, one after another.
// Without continue_on_error the first failure stops the run.
func (o *Orchestrator) RunManifest(ctx context.Context, m *manifest.Config) ([]ManifestResult, error) {
	startTime := time.Now()
	total := len(m.Sources)

	outputBase := o.config.Output.BaseDir
	if m.Options.Output != "" {
		outputBase = m.Options.Output
	}

	o.logger.Info().
		Int("sources", total).
		Bool("continue_on_error", m.Options.ContinueOnError).
		Str("output", outputBase).
		Msg("Starting manifest execution")

	results := make([]ManifestResult, 0, total)
	var firstErr error
	for i, source := range m.Sources {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Manifest execution cancelled")
			return results, ctx.Err()
		}

		input := source.Input
		if !ClassifyInput(input).IsRemote() {
			input = m.Resolve(input)
		}

		o.logger.Info().
			Int("source_idx", i).
			Int("total", total).
			Str("input", input).
			Msg("Processing source")

		result, err := o.run(ctx, input, outputBase)
		results = append(results, ManifestResult{Source: source, Result: result, Error: err})
		if err == nil {
			continue
		}

		if firstErr == nil {
			firstErr = fmt.Errorf("source %s failed: %w", source.Input, err)
		}
		if !m.Options.ContinueOnError {
			break
		}
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}
	o.logger.Info().
		Dur("total_duration", time.Since(startTime)).
		Int("total", total).
		Int("success", len(results)-failed).
		Int("failed", failed).
		Msg("Manifest execution completed")

	return results, firstErr
}
