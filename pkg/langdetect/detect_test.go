package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gofixit/pkg/langdetect"
)

func TestDetectFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{
			name:     "c file by extension",
			path:     "scan.c",
			content:  "int x = 1;\n",
			expected: "c",
		},
		{
			name:     "cpp file by extension",
			path:     "scan.cpp",
			content:  "int x = 1;\n",
			expected: "cpp",
		},
		{
			name:     "go file by extension",
			path:     "main.go",
			content:  "package main\n\nfunc main() {}\n",
			expected: "go",
		},
		{
			name:     "python file by extension",
			path:     "tool.py",
			content:  "print('hi')\n",
			expected: "python",
		},
		{
			name:     "json file by extension",
			path:     "data.json",
			content:  `{"key": 1}`,
			expected: "json",
		},
		{
			name:     "stdin falls back to content",
			path:     "-",
			content:  "package main\n\nfunc main() {}\n",
			expected: "go",
		},
		{
			name:     "empty path falls back to content",
			path:     "",
			content:  "#include <stdio.h>\n",
			expected: "c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.DetectFile(tt.path, []byte(tt.content))

			if result != tt.expected {
				t.Errorf("DetectFile(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "shebang bash",
			content:  "#!/bin/bash\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang sh",
			content:  "#!/bin/sh\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang python",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: "python",
		},
		{
			name:     "go code",
			content:  "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			expected: "go",
		},
		{
			name:     "c include",
			content:  "#include <stdio.h>\n\nint main(void) { return 0; }\n",
			expected: "c",
		},
		{
			name:     "python code",
			content:  "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			expected: "python",
		},
		{
			name:     "json object",
			content:  `{"key": "value", "number": 123}`,
			expected: "json",
		},
		{
			name:     "rust code",
			content:  "fn main() {\n    println!(\"Hello, world!\");\n}",
			expected: "rust",
		},
		{
			name:     "plain text fallback",
			content:  "just some text without any code patterns",
			expected: "text",
		},
		{
			name:     "empty content fallback",
			content:  "",
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect([]byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	// Content looks like Python but has bash shebang
	content := []byte("#!/bin/bash\ndef foo():\n    pass")
	result := langdetect.Detect(content)

	if result != "bash" {
		t.Errorf("Detect() = %q, want %q (shebang should take precedence)", result, "bash")
	}
}

func TestDetect_NormalizesLanguageNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "shell normalizes to bash",
			path:    "",
			content: "#!/bin/sh\necho test",
			want:    "bash",
		},
		{
			name:    "cpp avoids the plus signs",
			path:    "scan.cc",
			content: "int main() { return 0; }\n",
			want:    "cpp",
		},
		{
			name:    "languages are lowercase",
			path:    "main.go",
			content: "package main\n\nfunc main() {}",
			want:    "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.DetectFile(tt.path, []byte(tt.content))

			if result != tt.want {
				t.Errorf("DetectFile(%q) = %q, want %q", tt.path, result, tt.want)
			}
		})
	}
}
