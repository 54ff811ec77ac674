package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return []byte(fullTemplate), nil
	}
	return []byte(minimalTemplate), nil
}

const minimalTemplate = `# tagsoup configuration
# See: https://github.com/yaklabco/tagsoup

# Input interpretation: auto, html, or markdown
input: auto

# Output rendering: json, html, or tree
format: json

# Retain source spans on output nodes
# include_positions: false

# Extend the built-in tag tables
# tags:
#   void:
#     - my-void-tag
#   childless:
#     - my-raw-tag
`

const fullTemplate = `# tagsoup configuration - Full Template
# See: https://github.com/yaklabco/tagsoup
#
# This template includes all available settings with their defaults.
# Uncomment and modify settings as needed.

# Input interpretation: auto, html, or markdown.
# "auto" detects Markdown documents and converts them to HTML first.
input: auto

# Output rendering: json, html, or tree
format: json

# Retain source spans (index, line, column) on output nodes
include_positions: false

# Indent JSON output
pretty: true

# Extend the built-in tag classification tables.
# Entries are added to the defaults, never replacing them.
tags:
  # Tags that never have children or a closing tag
  void: []

  # Tags that implicitly close a same-named open sibling
  closing: []

  # Tags whose content is raw text, not parsed as markup
  childless: []

  # Ancestors that suppress implicit closing for a tag.
  # ancestor_breakers:
  #   li:
  #     - details
`

// templateToJSON emits the default configuration as indented JSON.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"input":             string(InputAuto),
		"format":            string(FormatJSON),
		"include_positions": false,
		"pretty":            true,
		"tags": map[string]any{
			"void":      []string{},
			"closing":   []string{},
			"childless": []string{},
		},
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# tagsoup configuration
# See: https://github.com/yaklabco/tagsoup`
}
