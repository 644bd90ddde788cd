package diff_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gofixit/pkg/diff"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty inputs", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("test.c", nil, nil)
		if p != nil {
			t.Error("expected nil for empty inputs")
		}

		p = diff.Compute("test.c", []byte{}, []byte{})
		if p != nil {
			t.Error("expected nil for empty byte slices")
		}
	})

	t.Run("returns nil for identical content", func(t *testing.T) {
		t.Parallel()

		content := []byte("hello\nworld\n")
		p := diff.Compute("test.c", content, content)

		if p != nil {
			t.Error("expected nil for identical content")
		}
	})

	t.Run("detects single line change", func(t *testing.T) {
		t.Parallel()

		original := []byte("hello\nworld\n")
		modified := []byte("hello\nearth\n")

		p := diff.Compute("test.c", original, modified)

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if !p.HasChanges() {
			t.Error("expected HasChanges() = true")
		}

		if len(p.Hunks) != 1 {
			t.Errorf("expected 1 hunk, got %d", len(p.Hunks))
		}

		if p.Additions != 1 || p.Deletions != 1 {
			t.Errorf("counts = +%d -%d, want +1 -1", p.Additions, p.Deletions)
		}
	})

	t.Run("detects addition", func(t *testing.T) {
		t.Parallel()

		original := []byte("line1\nline2\n")
		modified := []byte("line1\nline2\nline3\n")

		p := diff.Compute("test.c", original, modified)

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if !strings.Contains(p.String(), "+line3") {
			t.Errorf("expected patch to contain +line3, got:\n%s", p.String())
		}
	})

	t.Run("detects deletion", func(t *testing.T) {
		t.Parallel()

		original := []byte("line1\nline2\nline3\n")
		modified := []byte("line1\nline3\n")

		p := diff.Compute("test.c", original, modified)

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if !strings.Contains(p.String(), "-line2") {
			t.Errorf("expected patch to contain -line2, got:\n%s", p.String())
		}
	})

	t.Run("handles new content from empty original", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("test.c", []byte{}, []byte("new content\n"))

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if !strings.Contains(p.String(), "+new content") {
			t.Errorf("expected patch to contain +new content, got:\n%s", p.String())
		}
	})

	t.Run("handles removal to empty", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("test.c", []byte("old content\n"), []byte{})

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if !strings.Contains(p.String(), "-old content") {
			t.Errorf("expected patch to contain -old content, got:\n%s", p.String())
		}
	})
}

func TestPatch_String(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil patch", func(t *testing.T) {
		t.Parallel()

		var p *diff.Patch
		if p.String() != "" {
			t.Error("expected empty string for nil patch")
		}
	})

	t.Run("returns empty string for patch with no hunks", func(t *testing.T) {
		t.Parallel()

		p := &diff.Patch{Path: "test.c"}
		if p.String() != "" {
			t.Error("expected empty string for patch with no hunks")
		}
	})

	t.Run("produces valid unified diff format", func(t *testing.T) {
		t.Parallel()

		original := []byte("line1\nold\nline3\n")
		modified := []byte("line1\nnew\nline3\n")

		p := diff.Compute("test.c", original, modified)

		s := p.String()

		if !strings.HasPrefix(s, "--- a/test.c\n+++ b/test.c\n") {
			t.Errorf("expected standard diff header, got:\n%s", s)
		}

		if !strings.Contains(s, "@@ -") {
			t.Errorf("expected hunk header, got:\n%s", s)
		}
	})

	t.Run("strips leading slash from absolute paths", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("/tmp/test.c", []byte("a\n"), []byte("b\n"))

		if !strings.Contains(p.String(), "--- a/tmp/test.c") {
			t.Errorf("expected stripped path in header, got:\n%s", p.String())
		}
	})
}

func TestPatch_GitHeader(t *testing.T) {
	t.Parallel()

	p := diff.Compute("src/test.c", []byte("a\n"), []byte("b\n"))
	if p == nil {
		t.Fatal("expected non-nil patch")
	}

	want := "diff --git a/src/test.c b/src/test.c"
	if p.GitHeader() != want {
		t.Errorf("GitHeader() = %q, want %q", p.GitHeader(), want)
	}

	full := p.FullString()
	if !strings.HasPrefix(full, want+"\n--- a/src/test.c\n") {
		t.Errorf("FullString() missing header, got:\n%s", full)
	}
}

func TestPatch_HasChanges(t *testing.T) {
	t.Parallel()

	t.Run("returns false for nil patch", func(t *testing.T) {
		t.Parallel()

		var p *diff.Patch
		if p.HasChanges() {
			t.Error("expected HasChanges() = false for nil patch")
		}
	})

	t.Run("returns false for empty hunks", func(t *testing.T) {
		t.Parallel()

		p := &diff.Patch{Path: "test.c"}
		if p.HasChanges() {
			t.Error("expected HasChanges() = false for empty hunks")
		}
	})

	t.Run("returns true for patch with hunks", func(t *testing.T) {
		t.Parallel()

		p := &diff.Patch{
			Path: "test.c",
			Hunks: []diff.Hunk{
				{OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 1},
			},
		}
		if !p.HasChanges() {
			t.Error("expected HasChanges() = true")
		}
	})
}

func TestCompute_MultipleChanges(t *testing.T) {
	t.Parallel()

	t.Run("handles multiple separate changes", func(t *testing.T) {
		t.Parallel()

		// Changes far apart should produce separate hunks.
		var origLines []string
		var modLines []string

		for lineIdx := range 20 {
			origLines = append(origLines, "line"+string(rune('a'+lineIdx)))
			modLines = append(modLines, "line"+string(rune('a'+lineIdx)))
		}

		origLines[1] = "original2"
		modLines[1] = "modified2"
		origLines[17] = "original18"
		modLines[17] = "modified18"

		original := []byte(strings.Join(origLines, "\n") + "\n")
		modified := []byte(strings.Join(modLines, "\n") + "\n")

		p := diff.Compute("test.c", original, modified)

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if len(p.Hunks) != 2 {
			t.Errorf("expected 2 hunks, got %d", len(p.Hunks))
		}
	})

	t.Run("merges close changes into single hunk", func(t *testing.T) {
		t.Parallel()

		original := []byte("a\nb\nc\nd\ne\n")
		modified := []byte("a\nB\nc\nD\ne\n")

		p := diff.Compute("test.c", original, modified)

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if len(p.Hunks) != 1 {
			t.Errorf("expected 1 merged hunk, got %d", len(p.Hunks))
		}
	})
}

func TestCompute_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("handles content without trailing newline", func(t *testing.T) {
		t.Parallel()

		// Line-based diffing treats "line1\nline2" and "line1\nline2\n"
		// as equivalent since both split to the same lines.
		original := []byte("line1\nline2")
		modified := []byte("line1\nline3")

		p := diff.Compute("test.c", original, modified)

		if p == nil {
			t.Fatal("expected patch for changed content")
		}
	})

	t.Run("handles single line content", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("test.c", []byte("hello\n"), []byte("world\n"))

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		s := p.String()
		if !strings.Contains(s, "-hello") || !strings.Contains(s, "+world") {
			t.Errorf("unexpected patch output:\n%s", s)
		}
	})

	t.Run("handles empty lines", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("test.c", []byte("a\n\nb\n"), []byte("a\nb\n"))

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if len(p.Hunks) != 1 {
			t.Errorf("expected 1 hunk, got %d", len(p.Hunks))
		}
	})

	t.Run("handles all lines changed", func(t *testing.T) {
		t.Parallel()

		p := diff.Compute("test.c", []byte("a\nb\nc\n"), []byte("x\ny\nz\n"))

		if p == nil {
			t.Fatal("expected non-nil patch")
		}

		if len(p.Hunks) != 1 {
			t.Errorf("expected 1 hunk, got %d", len(p.Hunks))
		}

		hunk := p.Hunks[0]
		if hunk.OldCount != 3 {
			t.Errorf("OldCount = %d, want 3", hunk.OldCount)
		}
		if hunk.NewCount != 3 {
			t.Errorf("NewCount = %d, want 3", hunk.NewCount)
		}
	})
}

func TestHunk_LineKinds(t *testing.T) {
	t.Parallel()

	original := []byte("ctx1\nctx2\nold\nctx3\nctx4\n")
	modified := []byte("ctx1\nctx2\nnew\nctx3\nctx4\n")

	p := diff.Compute("test.c", original, modified)

	if p == nil || len(p.Hunks) == 0 {
		t.Fatal("expected non-nil patch with hunks")
	}

	var ctx, add, rem int
	for _, line := range p.Hunks[0].Lines {
		switch line.Kind {
		case diff.Context:
			ctx++
		case diff.Add:
			add++
		case diff.Remove:
			rem++
		}
	}

	if add != 1 {
		t.Errorf("add count = %d, want 1", add)
	}
	if rem != 1 {
		t.Errorf("remove count = %d, want 1", rem)
	}
	if ctx != 4 {
		t.Errorf("context count = %d, want 4", ctx)
	}
}
