// Package langdetect identifies the language of files being fixed.
// It uses go-enry, keyed on the file name when one is available and on
// content heuristics for standard input. Detection is advisory: it
// feeds run reports and never influences how edits apply.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be established.
const Unknown = "text"

// classifierCandidates bounds the Bayesian classifier to languages
// fix-it producers commonly emit advice for.
var classifierCandidates = []string{
	"C", "C++", "Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "SQL", "JSON", "YAML", "HTML", "Markdown",
}

// DetectFile identifies the language of a named file. The name wins
// when enry recognizes it; content analysis covers bare names and the
// stdin sentinel.
func DetectFile(path string, content []byte) string {
	if path != "" && path != "-" {
		if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
			return normalize(lang)
		}
	}
	return Detect(content)
}

// Detect identifies a language from content alone. Returns Unknown
// when nothing matches with confidence.
func Detect(content []byte) string {
	if len(content) == 0 {
		return Unknown
	}

	// A shebang names the interpreter outright.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// detectByPattern short-circuits the classifier for contents that
// carry an unambiguous signature. Keywords shared across languages
// (const, let, static) are deliberately not used.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("#include")):
		return "c"
	case hasPrefixAny(trimmed, "{", "[") && bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	}

	if bytes.Contains(content, []byte("def ")) && bytes.Contains(content, []byte("):")) {
		return "python"
	}
	if bytes.Contains(content, []byte("__name__")) || bytes.Contains(content, []byte("__main__")) {
		return "python"
	}
	if bytes.Contains(content, []byte("fn main()")) || bytes.Contains(content, []byte("println!")) {
		return "rust"
	}

	return ""
}

func hasPrefixAny(b []byte, prefixes ...string) bool {
	for _, p := range prefixes {
		if bytes.HasPrefix(b, []byte(p)) {
			return true
		}
	}
	return false
}

// normalize maps enry names to the lowercase identifiers reports use.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	}
	return strings.ToLower(lang)
}
