package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/tagsoup/pkg/config"
)

// envVarPrefix is the prefix for all tagsoup environment variables.
const envVarPrefix = "TAGSOUP_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"INPUT":             {field: "input", typ: envTypeString},
	"FORMAT":            {field: "format", typ: envTypeString},
	"INCLUDE_POSITIONS": {field: "include_positions", typ: envTypeBool},
	"PRETTY":            {field: "pretty", typ: envTypeBool},
	"VOID_TAGS":         {field: "tags.void", typ: envTypeSlice},
	"CLOSING_TAGS":      {field: "tags.closing", typ: envTypeSlice},
	"CHILDLESS_TAGS":    {field: "tags.childless", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TAGSOUP_ (e.g., TAGSOUP_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "input":
		cfg.Input = config.InputFormat(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "include_positions":
		cfg.IncludePositions = value
	case "pretty":
		cfg.Pretty = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "tags.void":
		cfg.Tags.Void = value
	case "tags.closing":
		cfg.Tags.Closing = value
	case "tags.childless":
		cfg.Tags.Childless = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"TAGSOUP_INPUT":             "Input interpretation: auto, html, or markdown",
		"TAGSOUP_FORMAT":            "Output format: json, html, or tree",
		"TAGSOUP_INCLUDE_POSITIONS": "Retain source spans: true or false",
		"TAGSOUP_PRETTY":            "Indent JSON output: true or false",
		"TAGSOUP_VOID_TAGS":         "Comma-separated list of extra void tags",
		"TAGSOUP_CLOSING_TAGS":      "Comma-separated list of extra closing tags",
		"TAGSOUP_CHILDLESS_TAGS":    "Comma-separated list of extra childless tags",
	}
}
