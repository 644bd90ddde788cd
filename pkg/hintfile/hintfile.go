// Package hintfile reads diagnostic documents from disk. A hints file
// carries the diagnostics some producer (a compiler, a linter, a
// review tool) emitted for one or more source files, each with the
// fix-it advice to apply. Both YAML and JSON encodings are accepted.
package hintfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gofixit/pkg/fsutil"
)

// CurrentVersion is the hints file schema version this build reads.
const CurrentVersion = 1

// ErrVersion means the document declares a schema version this build
// does not understand.
var ErrVersion = errors.New("unsupported hints file version")

// ErrSchema means the document parsed but its contents break the
// schema: an unknown severity word, or a hint with conflicting
// anchors. Positional faults are not schema errors; they flow through
// binding as unresolved hints.
var ErrSchema = errors.New("invalid hints document")

// Format identifies a hints file encoding.
type Format int

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = iota

	// FormatJSON is selected for .json files.
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is a parsed hints file.
type Document struct {
	// Version is the schema version. Zero is read as CurrentVersion.
	Version int `yaml:"version" json:"version"`

	// Diagnostics are the producer's findings, in emission order.
	Diagnostics []DiagnosticSpec `yaml:"diagnostics" json:"diagnostics"`
}

// DiagnosticSpec is one diagnostic as written in a hints file.
type DiagnosticSpec struct {
	// Severity is one of note, warning, error, fatal.
	Severity string `yaml:"severity" json:"severity"`

	// Code is the producer's diagnostic code, if it has one.
	Code string `yaml:"code,omitempty" json:"code,omitempty"`

	// Message is the human-readable finding.
	Message string `yaml:"message" json:"message"`

	// File is the source path the diagnostic is about. Empty binds
	// the diagnostic to the run's input file.
	File string `yaml:"file,omitempty" json:"file,omitempty"`

	// Line and Column place the diagnostic, 1-based. Optional.
	Line   int `yaml:"line,omitempty" json:"line,omitempty"`
	Column int `yaml:"column,omitempty" json:"column,omitempty"`

	// Hints is the fix-it advice attached to the diagnostic.
	Hints []HintSpec `yaml:"hints,omitempty" json:"hints,omitempty"`
}

// HintSpec is one fix-it hint as written in a hints file. A hint
// anchors either to a point (insertion) or to a range (removal when
// text is empty, replacement otherwise). Points and range endpoints
// are given as byte offsets or as 1-based line/column pairs.
type HintSpec struct {
	// File overrides the diagnostic's file for this hint.
	File string `yaml:"file,omitempty" json:"file,omitempty"`

	// Offset is the insertion point as a byte offset.
	Offset *int `yaml:"offset,omitempty" json:"offset,omitempty"`

	// Line and Column give the insertion point positionally.
	Line   int `yaml:"line,omitempty" json:"line,omitempty"`
	Column int `yaml:"column,omitempty" json:"column,omitempty"`

	// Start and End give the affected range as byte offsets.
	Start *int `yaml:"start,omitempty" json:"start,omitempty"`
	End   *int `yaml:"end,omitempty" json:"end,omitempty"`

	// StartLine through EndColumn give the range positionally.
	StartLine   int `yaml:"start_line,omitempty" json:"start_line,omitempty"`
	StartColumn int `yaml:"start_column,omitempty" json:"start_column,omitempty"`
	EndLine     int `yaml:"end_line,omitempty" json:"end_line,omitempty"`
	EndColumn   int `yaml:"end_column,omitempty" json:"end_column,omitempty"`

	// Text is the replacement text. Empty turns a range into a
	// removal.
	Text string `yaml:"text" json:"text"`
}

// hasRange reports whether the hint spells out a range anchor.
func (h HintSpec) hasRange() bool {
	return (h.Start != nil && h.End != nil) || (h.StartLine > 0 && h.EndLine > 0)
}

// hasPoint reports whether the hint spells out an insertion anchor.
func (h HintSpec) hasPoint() bool {
	return h.Offset != nil || h.Line > 0
}

// Load reads and parses the hints file at path, picking the encoding
// from the extension.
func Load(ctx context.Context, path string) (*Document, error) {
	data, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read hints file: %w", err)
	}
	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a hints document and checks its version.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse hints: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse hints: %w", err)
		}
	}

	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	if doc.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersion, doc.Version, CurrentVersion)
	}
	return &doc, nil
}
