// Package srcdetect classifies input documents as HTML or Markdown.
// It combines filename hints, structural patterns, and the go-enry
// classifier, and is used to decide whether a document needs Markdown
// conversion before parsing.
package srcdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Format is a detected input format.
type Format string

const (
	// FormatHTML means the document parses directly.
	FormatHTML Format = "html"
	// FormatMarkdown means the document needs conversion first.
	FormatMarkdown Format = "markdown"
)

// markdownExtensions are filename extensions treated as Markdown.
//
//nolint:gochecknoglobals // Read-only lookup table.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// htmlExtensions are filename extensions treated as HTML.
//
//nolint:gochecknoglobals // Read-only lookup table.
var htmlExtensions = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
}

// Detect classifies a document, using the filename when available.
// Ambiguous content defaults to HTML: the parser is total, so feeding
// it non-HTML text degrades gracefully.
func Detect(path string, content []byte) Format {
	if format, ok := detectByExtension(path); ok {
		return format
	}
	return DetectContent(content)
}

// DetectContent classifies a document by content alone.
func DetectContent(content []byte) Format {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return FormatHTML
	}

	if format := detectByPattern(trimmed); format != "" {
		return format
	}

	// Fall back to the classifier with just the two candidates.
	// Only trust the result when it is marked safe.
	if lang, safe := enry.GetLanguageByClassifier(content, []string{"HTML", "Markdown"}); safe {
		if strings.EqualFold(lang, "Markdown") {
			return FormatMarkdown
		}
	}

	return FormatHTML
}

// detectByExtension classifies by filename extension.
func detectByExtension(path string) (Format, bool) {
	if path == "" {
		return "", false
	}
	ext := strings.ToLower(filepath.Ext(path))
	if markdownExtensions[ext] {
		return FormatMarkdown, true
	}
	if htmlExtensions[ext] {
		return FormatHTML, true
	}
	return "", false
}

// detectByPattern checks for structures that are highly indicative of
// one format. Returns "" when nothing conclusive is found.
func detectByPattern(trimmed []byte) Format {
	lower := bytes.ToLower(trimmed)

	// Unambiguous HTML document markers.
	if bytes.HasPrefix(lower, []byte("<!doctype")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body")) {
		return FormatHTML
	}

	// A document that opens with a tag and closes one somewhere is
	// treated as markup even without the document shell.
	if trimmed[0] == '<' && bytes.Contains(trimmed, []byte("</")) {
		return FormatHTML
	}

	if hasMarkdownStructure(trimmed) {
		return FormatMarkdown
	}

	return ""
}

// hasMarkdownStructure counts line-level Markdown constructs.
func hasMarkdownStructure(content []byte) bool {
	lines := bytes.Split(content, []byte("\n"))
	hits := 0

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasPrefix(line, []byte("# ")),
			bytes.HasPrefix(line, []byte("## ")),
			bytes.HasPrefix(line, []byte("### ")):
			hits += 2
		case bytes.HasPrefix(line, []byte("- ")),
			bytes.HasPrefix(line, []byte("* ")),
			bytes.HasPrefix(line, []byte("> ")):
			hits++
		case bytes.HasPrefix(line, []byte("```")):
			hits += 2
		}
	}

	return hits >= 2
}
