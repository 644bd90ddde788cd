// Package diff computes line-based unified diffs. It backs dry-run
// previews, where the corrected text is shown instead of written.
package diff

import (
	"fmt"
	"strings"
)

// Kind classifies a line within a hunk.
type Kind int

const (
	// Context is an unchanged line shown for orientation.
	Context Kind = iota

	// Add is a line present only in the modified text.
	Add

	// Remove is a line present only in the original text.
	Remove
)

// Line is a single line of a hunk, without its +/-/space prefix.
type Line struct {
	Kind Kind
	Text string
}

// Hunk is one contiguous region of change with surrounding context.
type Hunk struct {
	// OldStart is the 1-based first line of the hunk in the original.
	OldStart int

	// OldCount is how many original lines the hunk covers.
	OldCount int

	// NewStart is the 1-based first line of the hunk in the modified text.
	NewStart int

	// NewCount is how many modified lines the hunk covers.
	NewCount int

	// Lines are the hunk's lines in order.
	Lines []Line
}

// Patch is a unified diff between two versions of one file.
type Patch struct {
	// Path is the file path used in headers.
	Path string

	// Hunks are the changed regions, in file order.
	Hunks []Hunk

	// Additions counts added lines across all hunks.
	Additions int

	// Deletions counts removed lines across all hunks.
	Deletions int
}

// contextRadius is how many unchanged lines surround each change.
const contextRadius = 3

// Compute diffs original against modified and returns the patch, or
// nil when the two are line-identical.
func Compute(path string, original, modified []byte) *Patch {
	if len(original) == 0 && len(modified) == 0 {
		return nil
	}

	oldLines := splitLines(original)
	newLines := splitLines(modified)
	if sameLines(oldLines, newLines) {
		return nil
	}

	hunks := computeHunks(oldLines, newLines)
	if len(hunks) == 0 {
		return nil
	}

	p := &Patch{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case Add:
				p.Additions++
			case Remove:
				p.Deletions++
			}
		}
	}
	return p
}

// HasChanges reports whether the patch contains any hunks.
func (p *Patch) HasChanges() bool {
	return p != nil && len(p.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (p *Patch) GitHeader() string {
	if p == nil {
		return ""
	}
	path := strings.TrimPrefix(p.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the patch in unified diff format, without the git
// header.
func (p *Patch) String() string {
	if !p.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(p.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range p.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case Context:
				fmt.Fprintf(&b, " %s\n", l.Text)
			case Add:
				fmt.Fprintf(&b, "+%s\n", l.Text)
			case Remove:
				fmt.Fprintf(&b, "-%s\n", l.Text)
			}
		}
	}

	return b.String()
}

// FullString renders the patch including the git header.
func (p *Patch) FullString() string {
	if !p.HasChanges() {
		return ""
	}
	return p.GitHeader() + "\n" + p.String()
}

// splitLines splits content into lines, dropping the empty tail a
// trailing newline produces.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func sameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// edit is one step of the line-level edit script.
type edit struct {
	kind Kind
	text string
}

func computeHunks(oldLines, newLines []string) []Hunk {
	script := editScript(oldLines, newLines)
	if len(script) == 0 {
		return nil
	}
	return groupHunks(script)
}

// editScript walks both sides against their longest common
// subsequence, emitting context for matches and add/remove otherwise.
func editScript(oldLines, newLines []string) []edit {
	common := lcs(oldLines, newLines)

	var script []edit
	oi, ni, ci := 0, 0, 0

	for oi < len(oldLines) || ni < len(newLines) {
		if ci < len(common) && oi < len(oldLines) && ni < len(newLines) &&
			oldLines[oi] == common[ci] && newLines[ni] == common[ci] {
			script = append(script, edit{kind: Context, text: oldLines[oi]})
			oi++
			ni++
			ci++
			continue
		}

		for oi < len(oldLines) && (ci >= len(common) || oldLines[oi] != common[ci]) {
			script = append(script, edit{kind: Remove, text: oldLines[oi]})
			oi++
		}
		for ni < len(newLines) && (ci >= len(common) || newLines[ni] != common[ci]) {
			script = append(script, edit{kind: Add, text: newLines[ni]})
			ni++
		}
	}

	return script
}

// groupHunks slices the edit script into hunks, merging changes whose
// context windows would touch or overlap.
func groupHunks(script []edit) []Hunk {
	type span struct {
		start, end int
	}

	var spans []span
	open := false
	start := 0
	for i, e := range script {
		changed := e.kind != Context
		if changed && !open {
			start = i
			open = true
		} else if !changed && open {
			spans = append(spans, span{start, i})
			open = false
		}
	}
	if open {
		spans = append(spans, span{start, len(script)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextRadius*2 {
			j++
		}
		h := buildHunk(script, spans[i].start, spans[j-1].end)
		if len(h.Lines) > 0 {
			hunks = append(hunks, h)
		}
		i = j
	}
	return hunks
}

func buildHunk(script []edit, changeStart, changeEnd int) Hunk {
	start := changeStart - contextRadius
	if start < 0 {
		start = 0
	}
	end := changeEnd + contextRadius
	if end > len(script) {
		end = len(script)
	}

	h := Hunk{OldStart: 1, NewStart: 1}
	for i := range start {
		if script[i].kind != Add {
			h.OldStart++
		}
		if script[i].kind != Remove {
			h.NewStart++
		}
	}

	for i := start; i < end; i++ {
		e := script[i]
		h.Lines = append(h.Lines, Line{Kind: e.kind, Text: e.text})
		switch e.kind {
		case Context:
			h.OldCount++
			h.NewCount++
		case Remove:
			h.OldCount++
		case Add:
			h.NewCount++
		}
	}

	return h
}

// lcs computes the longest common subsequence of two line slices.
func lcs(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	n := dp[len(a)][len(b)]
	if n == 0 {
		return nil
	}

	out := make([]string, n)
	i, j, k := len(a), len(b), n-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return out
}
