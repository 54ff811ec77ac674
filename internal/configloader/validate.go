package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/tagsoup/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "tags.void[0]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Input != "" && !cfg.Input.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "input",
			Value:   cfg.Input,
			Message: fmt.Sprintf("invalid input %q; must be one of: auto, html, markdown", cfg.Input),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: json, html, tree", cfg.Format),
		})
	}

	validateTagList(result, "tags.void", cfg.Tags.Void)
	validateTagList(result, "tags.closing", cfg.Tags.Closing)
	validateTagList(result, "tags.childless", cfg.Tags.Childless)

	for tag, breakers := range cfg.Tags.AncestorBreakers {
		if strings.TrimSpace(tag) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "tags.ancestor_breakers",
				Value:   tag,
				Message: "breaker key must be a non-empty tag name",
			})
		}
		validateTagList(result, "tags.ancestor_breakers."+tag, breakers)
	}

	return result
}

// validateTagList checks that every entry in a tag list is a plausible tag name.
func validateTagList(result *ValidationResult, field string, names []string) {
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   name,
				Message: "tag name must not be empty",
			})
			continue
		}
		if strings.ContainsAny(trimmed, "<>/ \t") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   name,
				Message: fmt.Sprintf("invalid tag name %q", name),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
