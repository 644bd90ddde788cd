package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofixit/internal/ui/pretty"
)

func TestNewStyles(t *testing.T) {
	for _, colorEnabled := range []bool{true, false} {
		styles := pretty.NewStyles(colorEnabled)
		require.NotNil(t, styles)

		// Rendering "x" must always yield "x" back, possibly wrapped
		// in ANSI sequences; lipgloss may suppress the sequences in
		// non-TTY environments, so only the text itself is asserted.
		all := map[string]lipgloss.Style{
			"Fatal":        styles.Fatal,
			"Error":        styles.Error,
			"Warning":      styles.Warning,
			"Note":         styles.Note,
			"FilePath":     styles.FilePath,
			"Location":     styles.Location,
			"Code":         styles.Code,
			"Message":      styles.Message,
			"Hint":         styles.Hint,
			"SourceLine":   styles.SourceLine,
			"Caret":        styles.Caret,
			"DiffHeader":   styles.DiffHeader,
			"DiffHunk":     styles.DiffHunk,
			"DiffAdd":      styles.DiffAdd,
			"DiffRemove":   styles.DiffRemove,
			"DiffContext":  styles.DiffContext,
			"SummaryTitle": styles.SummaryTitle,
			"SummaryValue": styles.SummaryValue,
			"Success":      styles.Success,
			"Failure":      styles.Failure,
			"Dim":          styles.Dim,
			"Bold":         styles.Bold,
		}
		for name, style := range all {
			assert.Contains(t, style.Render("x"), "x", "style %s (color=%v)", name, colorEnabled)
		}
	}
}

func TestNewStylesNoColorIsPlain(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "error: message", styles.Error.Render("error: message"))
	assert.Equal(t, "+const int x = 2;", styles.DiffAdd.Render("+const int x = 2;"))
	assert.Equal(t, "scan.c", styles.FilePath.Render("scan.c"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf),
		"always mode holds even for non-TTY writers")
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
	assert.False(t, pretty.IsColorEnabled("auto", &buf),
		"a bytes.Buffer is not a TTY")

	// Unknown and empty modes behave like auto.
	assert.False(t, pretty.IsColorEnabled("", &buf))
	assert.False(t, pretty.IsColorEnabled("unknown", &buf))
}

func TestIsColorEnabledRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout),
		"NO_COLOR must win over TTY detection in auto mode")
}
