package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gofixit/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		mode fsutil.BackupMode
		want string
	}{
		{
			name: "sidecar mode",
			path: "/path/to/scan.c",
			mode: fsutil.BackupModeSidecar,
			want: "/path/to/scan.c.gofixit.bak",
		},
		{
			name: "none mode returns empty",
			path: "/path/to/scan.c",
			mode: fsutil.BackupModeNone,
			want: "",
		},
		{
			name: "unknown mode falls back to sidecar",
			path: "/path/to/scan.c",
			mode: fsutil.BackupMode("unknown"),
			want: "/path/to/scan.c.gofixit.bak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fsutil.BackupPath(tt.path, tt.mode); got != tt.want {
				t.Errorf("BackupPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultBackupConfig(t *testing.T) {
	t.Parallel()

	cfg := fsutil.DefaultBackupConfig()

	if !cfg.Enabled {
		t.Error("expected backups enabled by default")
	}
	if cfg.Mode != fsutil.BackupModeSidecar {
		t.Errorf("Mode = %q, want %q", cfg.Mode, fsutil.BackupModeSidecar)
	}
}

// TestBackupLifecycle walks the full in-place rewrite sequence:
// preserve the original, overwrite it with corrected text, restore,
// and finally drop the backup.
func TestBackupLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.c")
	original := []byte("int x = 1;\n")
	corrected := []byte("const int x = 2;\n")

	if err := os.WriteFile(path, original, 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg := fsutil.DefaultBackupConfig()
	created, err := fsutil.CreateBackup(ctx, path, cfg)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if !created {
		t.Fatal("CreateBackup() = false, want true")
	}

	backupPath := fsutil.BackupPath(path, cfg.Mode)
	stat, err := os.Stat(backupPath)
	if err != nil {
		t.Fatalf("stat backup: %v", err)
	}
	if stat.Mode().Perm() != 0600 {
		t.Errorf("backup mode = %o, want %o", stat.Mode().Perm(), 0600)
	}

	// The in-place rewrite itself.
	if err := fsutil.WriteAtomic(ctx, path, corrected, 0600); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	// A second apply over the rewritten file must not clobber the
	// preserved original.
	created, err = fsutil.CreateBackup(ctx, path, cfg)
	if err != nil {
		t.Fatalf("CreateBackup() second run error = %v", err)
	}
	if created {
		t.Error("CreateBackup() second run = true, want false")
	}
	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != string(original) {
		t.Errorf("backup content = %q, want preserved original %q", got, original)
	}

	restored, err := fsutil.RestoreBackup(ctx, path, cfg.Mode)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if !restored {
		t.Fatal("RestoreBackup() = false, want true")
	}
	got, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	if string(got) != string(original) {
		t.Errorf("restored content = %q, want %q", got, original)
	}

	// Restore leaves the backup for --keep; removal is separate.
	if !fsutil.BackupExists(path, cfg.Mode) {
		t.Error("BackupExists() = false after restore, want true")
	}
	removed, err := fsutil.RemoveBackup(path, cfg.Mode)
	if err != nil {
		t.Fatalf("RemoveBackup() error = %v", err)
	}
	if !removed {
		t.Error("RemoveBackup() = false, want true")
	}
	if fsutil.BackupExists(path, cfg.Mode) {
		t.Error("BackupExists() = true after removal, want false")
	}
}

func TestCreateBackupSkips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   fsutil.BackupConfig
		write bool
	}{
		{
			name:  "disabled",
			cfg:   fsutil.BackupConfig{Enabled: false, Mode: fsutil.BackupModeSidecar},
			write: true,
		},
		{
			name:  "mode none",
			cfg:   fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeNone},
			write: true,
		},
		{
			name:  "missing original",
			cfg:   fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar},
			write: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "scan.c")
			if tt.write {
				if err := os.WriteFile(path, []byte("int x;\n"), 0644); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			created, err := fsutil.CreateBackup(context.Background(), path, tt.cfg)
			if err != nil {
				t.Fatalf("CreateBackup() error = %v", err)
			}
			if created {
				t.Error("CreateBackup() = true, want false")
			}
			if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
				t.Error("a backup file was written, want none")
			}
		})
	}
}

func TestRestoreBackupMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan.c")

	restored, err := fsutil.RestoreBackup(context.Background(), path, fsutil.BackupModeSidecar)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if restored {
		t.Error("RestoreBackup() = true, want false when no backup exists")
	}

	removed, err := fsutil.RemoveBackup(path, fsutil.BackupModeSidecar)
	if err != nil {
		t.Fatalf("RemoveBackup() error = %v", err)
	}
	if removed {
		t.Error("RemoveBackup() = true, want false when no backup exists")
	}
}

func TestBackupModeNoneIsInert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	restored, err := fsutil.RestoreBackup(ctx, "/any/path", fsutil.BackupModeNone)
	if err != nil || restored {
		t.Errorf("RestoreBackup() = (%v, %v), want (false, nil)", restored, err)
	}
	removed, err := fsutil.RemoveBackup("/any/path", fsutil.BackupModeNone)
	if err != nil || removed {
		t.Errorf("RemoveBackup() = (%v, %v), want (false, nil)", removed, err)
	}
	if fsutil.BackupExists("/any/path", fsutil.BackupModeNone) {
		t.Error("BackupExists() = true for none mode, want false")
	}
}

func TestBackupHonorsCancellation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan.c")
	if err := os.WriteFile(path, []byte("int x;\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fsutil.CreateBackup(ctx, path, fsutil.DefaultBackupConfig()); err == nil {
		t.Error("CreateBackup() with cancelled context = nil error, want error")
	}
	if _, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar); err == nil {
		t.Error("RestoreBackup() with cancelled context = nil error, want error")
	}
}
