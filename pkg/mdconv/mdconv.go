// Package mdconv converts Markdown documents to HTML so they can feed
// the HTML parsing pipeline. It uses goldmark with GitHub Flavored
// Markdown extensions.
package mdconv

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter renders Markdown to HTML.
type Converter struct {
	md goldmark.Markdown
}

// New creates a GFM-flavored converter.
// Raw HTML embedded in the Markdown is passed through unchanged, since
// the downstream parser is the component meant to deal with it.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Convert renders Markdown content to HTML.
func (c *Converter) Convert(ctx context.Context, content []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("convert cancelled: %w", err)
	}

	var buf bytes.Buffer
	if err := c.md.Convert(content, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	return buf.Bytes(), nil
}
