package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofixit/internal/logging"
	"github.com/yaklabco/gofixit/pkg/fsutil"
)

type restoreFlags struct {
	keep bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore INPUT...",
		Short: "Restore files from their sidecar backups",
		Long: `Put back the sidecar backups a previous in-place apply run created.

Each INPUT is restored from its ` + fsutil.BackupSuffix + ` sibling when one
exists. The backup file is removed after a successful restore unless --keep
is given. Inputs without a backup are reported and skipped.

Examples:
  gofixit restore scan.c          # Restore scan.c from scan.c` + fsutil.BackupSuffix + `
  gofixit restore --keep scan.c   # Restore but keep the backup file`,
		Args: minimumInputs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.keep, "keep", false, "leave the backup file in place after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string, flags *restoreFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	restored := 0
	for _, path := range args {
		ok, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			return fmt.Errorf("restore %s: %w", path, err)
		}
		if !ok {
			logger.Warn("no backup to restore", logging.FieldPath, path)
			continue
		}

		restored++
		logger.Info("restored", logging.FieldPath, path,
			logging.FieldBackup, fsutil.BackupPath(path, fsutil.BackupModeSidecar))

		if !flags.keep {
			if _, err := fsutil.RemoveBackup(path, fsutil.BackupModeSidecar); err != nil {
				return fmt.Errorf("remove backup for %s: %w", path, err)
			}
		}
	}

	logger.Info("restore complete", "restored", restored, "inputs", len(args))
	return nil
}
