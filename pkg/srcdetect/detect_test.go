package srcdetect_test

import (
	"testing"

	"github.com/yaklabco/tagsoup/pkg/srcdetect"
)

func TestDetect_ByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected srcdetect.Format
	}{
		{"md extension", "README.md", "<div></div>", srcdetect.FormatMarkdown},
		{"markdown extension", "doc.markdown", "", srcdetect.FormatMarkdown},
		{"html extension", "index.html", "# heading", srcdetect.FormatHTML},
		{"htm extension", "page.htm", "", srcdetect.FormatHTML},
		{"uppercase extension", "README.MD", "", srcdetect.FormatMarkdown},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := srcdetect.Detect(testCase.path, []byte(testCase.content))
			if got != testCase.expected {
				t.Errorf("Detect(%q) = %q, want %q", testCase.path, got, testCase.expected)
			}
		})
	}
}

func TestDetectContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected srcdetect.Format
	}{
		{
			name:     "empty defaults to html",
			content:  "",
			expected: srcdetect.FormatHTML,
		},
		{
			name:     "doctype",
			content:  "<!DOCTYPE html><html></html>",
			expected: srcdetect.FormatHTML,
		},
		{
			name:     "fragment with closers",
			content:  "<div><span>x</span></div>",
			expected: srcdetect.FormatHTML,
		},
		{
			name:     "markdown headings and lists",
			content:  "# Title\n\n- one\n- two\n",
			expected: srcdetect.FormatMarkdown,
		},
		{
			name:     "markdown fences",
			content:  "intro\n\n```go\npackage main\n```\n",
			expected: srcdetect.FormatMarkdown,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := srcdetect.DetectContent([]byte(testCase.content))
			if got != testCase.expected {
				t.Errorf("DetectContent(%q) = %q, want %q", testCase.content, got, testCase.expected)
			}
		})
	}
}
