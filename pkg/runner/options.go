// Package runner fans a fix run out over multiple inputs: expansion
// of directory arguments, a bounded worker pool, deterministic result
// ordering, and aggregate statistics.
package runner

import "github.com/yaklabco/gofixit/pkg/fixit"

// Options controls a batch fix run.
type Options struct {
	// Inputs are the files or directories to fix. "-" reads standard
	// input. Empty defaults to the current directory.
	Inputs []string

	// WorkingDir is the base directory for resolving relative inputs
	// and patterns. Empty means the process working directory.
	WorkingDir string

	// ExcludeGlobs skip matching files and directories during
	// directory expansion.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are
	// traversed during expansion.
	FollowSymlinks bool

	// Jobs caps concurrent workers. Zero or negative means one per
	// CPU.
	Jobs int

	// Pipeline configures each per-file run. The runner supplies the
	// loader from its document when none is set.
	Pipeline fixit.PipelineOptions
}

// effectiveInputs returns the inputs to process, defaulting to ".".
func (o Options) effectiveInputs() []string {
	if len(o.Inputs) == 0 {
		return []string{"."}
	}
	return o.Inputs
}
