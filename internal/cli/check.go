package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gofixit/pkg/config"
)

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "check --fixits FILE INPUT...",
		Short: "Validate fix-it hints without writing anything",
		Long: `Validate and apply the fix-it hints in memory, reporting what would
change, but never touch the filesystem. Exits 1 when any fix-it failed
to apply, so check works as a CI gate for machine-generated fixes.`,
		Args: minimumInputs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// A check is an apply that never reaches the filesystem.
			cfg.DryRun = true
			return runFixits(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&cfg.FixitsPath, "fixits", "f", "", "diagnostics document with fix-it hints (required)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip during directory expansion")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when error diagnostics were reported, even if all fixes applied")

	return cmd
}
