package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gofixit/internal/ui/pretty"
	"github.com/yaklabco/gofixit/pkg/diag"
	"github.com/yaklabco/gofixit/pkg/source"
)

func TestConsumer_RendersDiagnostics(t *testing.T) {
	styles := pretty.NewStyles(false)
	files, id := testFileSet()

	var buf bytes.Buffer
	consumer := pretty.NewConsumer(&buf, styles, true)
	consumer.BindFiles(files)

	d := diag.NewDiagnostic(diag.SeverityError, "expected '='").
		At(source.Location{File: id, Offset: 17}).
		Build()
	consumer.HandleDiagnostic(d)

	out := buf.String()
	assert.Contains(t, out, "test.c:2:7")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "expected '='")
	assert.Contains(t, out, "^")
}

func TestConsumer_UnboundOmitsLocation(t *testing.T) {
	styles := pretty.NewStyles(false)

	var buf bytes.Buffer
	consumer := pretty.NewConsumer(&buf, styles, false)

	d := diag.NewDiagnostic(diag.SeverityWarning, "unused variable").
		At(source.Location{File: 1, Offset: 0}).
		Build()
	consumer.HandleDiagnostic(d)

	out := buf.String()
	assert.Contains(t, out, "unused variable")
	assert.NotContains(t, out, ":1:1")
}

func TestConsumer_ParticipatesInCounts(t *testing.T) {
	consumer := pretty.NewConsumer(&bytes.Buffer{}, pretty.NewStyles(false), false)
	assert.True(t, consumer.ParticipatesInCounts())
}
