package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/repoanalyzer/internal/app"
	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/manifest"
	"github.com/quantmind-br/repoanalyzer/internal/tui"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
	"github.com/quantmind-br/repoanalyzer/pkg/version"
)

var (
	cfgFile string

	// Dependencies for testing
	execLookPath = exec.LookPath
	loadConfig   = func() (*config.Config, error) { return config.Load(cfgFile) }
	runEditor    = tui.Run
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repoanalyzer <repository>",
	Short: "Dump a repository into a markdown document and a file tree",
	Long: `RepoAnalyzer clones a remote repository (or opens a local directory) and
writes two files into <name>_analysis/:

  <name>_contents.md    every file's contents, one section per file
  <name>_file_tree.txt  the indented directory tree

Remote repositories are cloned into a temporary directory that is removed
when the analysis finishes.`,
	Example: `  repoanalyzer https://github.com/user/repo.git
  repoanalyzer ./path/to/project`,
	Version:       version.Short(),
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.repoanalyzer/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (same as logging.verbose)")
	bindFlags()

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(batchCmd)

	configEditCmd.Flags().Bool("accessible", false, "Use accessible forms (screen readers)")
	configCmd.AddCommand(configEditCmd)
}

// bindFlags binds persistent flags to their config keys
func bindFlags() {
	_ = viper.BindPFlag("logging.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func run(cmd *cobra.Command, args []string) error {
	// Arguments are valid from here on; errors are not usage problems
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:   cfg,
		Progress: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	result, err := orchestrator.Run(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Analysis complete. Output files are in %s\n", result.Output.Dir)
	return nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			fmt.Fprintln(cmd.ErrOrStderr(), "Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Analyze every repository listed in a manifest file",
	Long: `Analyzes the repositories listed in a YAML or JSON manifest, one after another:

  sources:
    - input: https://github.com/org/repo.git
    - input: ./services/billing
  options:
    continue_on_error: true
    output: ./analysis

Relative paths are resolved against the manifest's directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		m, err := manifest.NewLoader().Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
			Config:   cfg,
			Progress: cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("failed to create orchestrator: %w", err)
		}

		ctx, cancel := signalContext(cmd)
		defer cancel()

		results, runErr := orchestrator.RunManifest(ctx, m)
		out := cmd.OutOrStdout()
		failed := 0
		for _, r := range results {
			if r.Error != nil {
				failed++
				fmt.Fprintf(out, "FAILED  %s: %v\n", r.Source.Input, r.Error)
				continue
			}
			fmt.Fprintf(out, "OK      %s -> %s\n", r.Source.Input, r.Result.Output.Dir)
		}
		// each failure is already on its FAILED line
		if failed > 0 {
			return fmt.Errorf("%d of %d sources failed", failed, len(m.Sources))
		}
		return runErr
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Verifies that the git client is installed and that output and temporary directories are writable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Checking system dependencies...")
		allPassed := true

		// Check 1: Config file
		fmt.Fprint(out, "  Config file: ")
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(out, "WARN (%v)\n", err)
			cfg = config.Default()
		} else {
			fmt.Fprintln(out, "OK")
		}

		// Check 2: git client
		fmt.Fprint(out, "  Git client: ")
		if gitPath := checkGit(cfg.Clone.GitBinary); gitPath != "" {
			fmt.Fprintf(out, "OK (%s)\n", gitPath)
		} else if cfg.Clone.Method == config.CloneMethodGoGit {
			fmt.Fprintln(out, "NOT FOUND (using built-in go-git)")
		} else {
			fmt.Fprintf(out, "NOT FOUND (%s is required to clone remote repositories)\n", cfg.Clone.GitBinary)
			allPassed = false
		}

		// Check 3: Write permissions for output dir
		fmt.Fprint(out, "  Write permissions: ")
		if checkWritePermissions(utils.ExpandPath(cfg.Output.BaseDir)) {
			fmt.Fprintln(out, "OK")
		} else {
			fmt.Fprintln(out, "FAILED")
			allPassed = false
		}

		// Check 4: Temporary directory
		fmt.Fprint(out, "  Temporary directory: ")
		if checkWritePermissions(os.TempDir()) {
			fmt.Fprintf(out, "OK (%s)\n", os.TempDir())
		} else {
			fmt.Fprintln(out, "FAILED (remote repositories cannot be cloned)")
			allPassed = false
		}

		fmt.Fprintln(out)
		if allPassed {
			fmt.Fprintln(out, "All critical checks passed!")
		} else {
			fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkGit returns the path of the git binary, or "" if it is not installed
func checkGit(binary string) string {
	if binary == "" {
		binary = config.DefaultGitBinary
	}
	path, err := execLookPath(binary)
	if err != nil {
		return ""
	}
	return path
}

// checkWritePermissions checks if we can create files in dir
func checkWritePermissions(dir string) bool {
	f, err := os.CreateTemp(dir, ".repoanalyzer_test_write_*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Prints the configuration after merging defaults, the config file and REPOANALYZER_* environment variables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return writeConfig(cmd.OutOrStdout(), cfg)
	},
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			// start from defaults so a broken file can be repaired
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (starting from defaults)\n", err)
			cfg = config.Default()
		}

		path := configPath()
		accessible, _ := cmd.Flags().GetBool("accessible")

		return runEditor(tui.Options{
			Config:     cfg,
			Accessible: accessible,
			SaveFunc: func(c *config.Config) error {
				return config.Save(c, path)
			},
		})
	},
}

// configPath returns the file the editor saves to
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.ConfigFilePath()
}
