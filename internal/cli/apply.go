package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gofixit/internal/configloader"
	"github.com/yaklabco/gofixit/internal/logging"
	"github.com/yaklabco/gofixit/pkg/config"
	"github.com/yaklabco/gofixit/pkg/fixit"
	"github.com/yaklabco/gofixit/pkg/fsutil"
	"github.com/yaklabco/gofixit/pkg/hintfile"
	"github.com/yaklabco/gofixit/pkg/reporter"
	"github.com/yaklabco/gofixit/pkg/runner"
)

type applyFlags struct {
	format   string
	ignore   []string
	backup   bool
	noBackup bool
	strict   bool
}

func newApplyCommand() *cobra.Command {
	var cfg config.Config
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply --fixits FILE [flags] INPUT...",
		Short: "Apply fix-it hints to source files",
		Long:  applyLongDescription,
		Args:  minimumInputs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, &cfg, flags)
		},
	}

	addApplyFlags(cmd, &cfg, flags)

	return cmd
}

const applyLongDescription = `Apply the fix-it hints in a diagnostics document to source files.

By default the corrected text is written to a sibling file with a "fixit"
marker before the extension (scan.c becomes scan.fixit.c). Pass "-" as the
input to read standard input and write standard output.

Any fix-it failure suppresses the output for that input entirely; gofixit
never writes a partially corrected file.

Examples:
  gofixit apply -f fixes.yml scan.c            # Write scan.fixit.c
  gofixit apply -f fixes.yml -o fixed.c scan.c # Explicit destination
  gofixit apply -f fixes.yml --in-place scan.c # Rewrite scan.c (with backup)
  gofixit apply -f fixes.yml --dry-run scan.c  # Diff preview, no writes
  gofixit apply -f fixes.json src/             # Batch over a directory
  gofixit apply -f fixes.yml - < scan.c        # Stdin to stdout`

func runApply(cmd *cobra.Command, args []string, cfg *config.Config, flags *applyFlags) error {
	if err := validateApplyArgs(args, cfg); err != nil {
		return err
	}
	return runFixits(cmd, args, cfg, flags)
}

// validateApplyArgs rejects flag combinations the flag parser cannot.
func validateApplyArgs(args []string, cfg *config.Config) error {
	if cfg.Output != "" && len(args) != 1 {
		return fmt.Errorf("%w: --output requires exactly one input", ErrUsage)
	}
	if cfg.Output != "" && cfg.InPlace {
		return fmt.Errorf("%w: --output and --in-place are mutually exclusive", ErrUsage)
	}
	if cfg.InPlace && slices.Contains(args, fixit.StdinName) {
		return fmt.Errorf("%w: --in-place cannot rewrite standard input", ErrUsage)
	}
	return nil
}

// runFixits is the shared apply/check execution path: resolve config,
// parse the hints document once, fan the run out over the inputs, and
// report.
func runFixits(cmd *cobra.Command, args []string, cfg *config.Config, flags *applyFlags) error {
	if cfg.FixitsPath == "" {
		return fmt.Errorf("%w: --fixits is required", ErrUsage)
	}

	logger := logging.Default()

	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.Strict = cfg.Strict || flags.strict

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, workDir, err := resolveConfig(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}
	if flags.backup {
		finalCfg.Backups.Enabled = true
	}
	if flags.noBackup {
		finalCfg.Backups.Enabled = false
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	doc, err := hintfile.Load(ctx, finalCfg.FixitsPath)
	if err != nil {
		return fmt.Errorf("load fixits: %w", err)
	}

	logger.Debug("starting fix run",
		logging.FieldInput, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldInPlace, finalCfg.InPlace,
	)

	result, err := runner.New(doc).Run(ctx, runner.Options{
		Inputs:       args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Pipeline: fixit.PipelineOptions{
			Logger:         logger,
			Suffix:         finalCfg.Suffix,
			OutputName:     finalCfg.Output,
			InPlace:        finalCfg.InPlace,
			DryRun:         finalCfg.DryRun,
			DetectLanguage: finalCfg.DetectLanguage,
			Backups: fsutil.BackupConfig{
				Enabled: finalCfg.Backups.Enabled,
				Mode:    fsutil.BackupMode(finalCfg.Backups.Mode),
			},
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
		},
	})
	if err != nil {
		return errors.Join(errors.New("fix run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          reportWriter(cmd, args, finalCfg),
		ErrorWriter:     cmd.ErrOrStderr(),
		Format:          format,
		Color:           colorMode,
		ShowDiagnostics: true,
		ShowContext:     true,
		ShowSummary:     true,
		WorkingDir:      workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasRunErrors() {
		return fmt.Errorf("process inputs: %w", result.FirstError())
	}

	switch ExitCodeFromResult(result, finalCfg.Strict) {
	case ExitFixFailures:
		return ErrFixFailures
	case ExitErrorDiagnostics:
		return ErrStrictErrors
	default:
		return nil
	}
}

// resolveConfig merges CLI flags, environment, and discovered config
// files into the effective run configuration.
func resolveConfig(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *log.Logger) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// reportWriter picks where the run report goes. When the corrected
// text itself is bound for standard output (stdin input, not a dry
// run), the report moves to stderr so the two streams do not mix.
func reportWriter(cmd *cobra.Command, args []string, cfg *config.Config) io.Writer {
	if !cfg.DryRun && slices.Contains(args, fixit.StdinName) {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func addApplyFlags(cmd *cobra.Command, cfg *config.Config, flags *applyFlags) {
	cmd.Flags().StringVarP(&cfg.FixitsPath, "fixits", "f", "", "diagnostics document with fix-it hints (required)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "destination path (single input only)")
	cmd.Flags().BoolVar(&cfg.InPlace, "in-place", false, "rewrite inputs instead of writing sibling files")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show a diff of the fixes without writing anything")
	cmd.Flags().StringVar(&cfg.Suffix, "suffix", "", "marker for derived sibling paths (default \"fixit\")")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "force backups for in-place rewrites")
	cmd.Flags().BoolVar(&flags.noBackup, "no-backup", false, "disable backups for in-place rewrites")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip during directory expansion")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when error diagnostics were reported, even if all fixes applied")
}
