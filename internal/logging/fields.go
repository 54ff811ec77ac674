// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Parsing fields.
	FieldBytes     = "bytes"
	FieldTokens    = "tokens"
	FieldNodes     = "nodes"
	FieldPositions = "positions"
	FieldMarkdown  = "markdown"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
