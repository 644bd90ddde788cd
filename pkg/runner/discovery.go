package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/gofixit/pkg/hintfile"
)

// ExpandInputs resolves the run's inputs into concrete file paths.
// File arguments (and the "-" sentinel) pass through as typed.
// Directory arguments are walked and contribute the files the hints
// document mentions, as working-directory-relative paths so they
// match the document's own spelling. The result is deduplicated;
// explicit inputs keep their order and each directory contributes a
// sorted block.
func ExpandInputs(ctx context.Context, opts Options, doc *hintfile.Document) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	mentioned := mentionedFiles(doc)

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, input := range opts.effectiveInputs() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("input expansion cancelled: %w", err)
		}

		if input == "-" {
			add(input)
			continue
		}

		absPath := input
		if !filepath.IsAbs(input) {
			absPath = filepath.Join(workDir, input)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			add(input)
			continue
		}

		matched, err := walkDirectory(ctx, absPath, workDir, mentioned, opts)
		if err != nil {
			return nil, err
		}
		sort.Strings(matched)
		for _, f := range matched {
			add(f)
		}
	}

	return files, nil
}

// mentionedFiles collects the normalized file spellings the document
// names, at diagnostic and hint level.
func mentionedFiles(doc *hintfile.Document) map[string]struct{} {
	out := make(map[string]struct{})
	if doc == nil {
		return out
	}
	for _, d := range doc.Diagnostics {
		if d.File != "" {
			out[normalizeRel(d.File)] = struct{}{}
		}
		for _, h := range d.Hints {
			if h.File != "" {
				out[normalizeRel(h.File)] = struct{}{}
			}
		}
	}
	return out
}

func normalizeRel(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory walks root and returns the workdir-relative paths of
// files the document mentions. Hidden entries and excluded patterns
// are skipped; broken symlinks are ignored.
func walkDirectory(
	ctx context.Context,
	root string,
	workDir string,
	mentioned map[string]struct{},
	opts Options,
) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAny(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Intentionally skip inaccessible symlink targets
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target, not the link, so WalkDir's Lstat on
				// the root cannot recurse through the link again.
				subFiles, err := walkDirectory(ctx, realPath, workDir, mentioned, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if matchesAny(relPath, opts.ExcludeGlobs) {
			return nil
		}
		if _, ok := mentioned[relPath]; ok {
			files = append(files, relPath)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if globMatch(relPath, pattern) {
			return true
		}
	}
	return false
}

// globMatch matches a slash-normalized path against a glob pattern,
// with ** support for recursive matching.
func globMatch(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return doubleStarMatch(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	// A bare pattern may target just the file name.
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// doubleStarMatch handles the "**/name", "name/**", and
// "prefix/**/suffix" pattern shapes.
func doubleStarMatch(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix == "" && suffix == "" {
		return true
	}

	if prefix == "" {
		// "**/name": match anywhere in the path.
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, part); err == nil && matched {
				return true
			}
		}
		return false
	}

	if suffix == "" {
		// "name/**": match the subtree and the directory itself.
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if strings.HasSuffix(path, suffix) {
		return true
	}
	matched, err := filepath.Match(suffix, filepath.Base(path))
	return err == nil && matched
}
