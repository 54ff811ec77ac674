package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
// It produces human-readable output with appropriate formatting.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Input:            c.Input,
		Format:           c.Format,
		IncludePositions: c.IncludePositions,
		Pretty:           c.Pretty,
		Output:           c.Output,
		Debug:            c.Debug,
	}

	clone.Tags.Void = copyStrings(c.Tags.Void)
	clone.Tags.Closing = copyStrings(c.Tags.Closing)
	clone.Tags.Childless = copyStrings(c.Tags.Childless)

	if c.Tags.AncestorBreakers != nil {
		clone.Tags.AncestorBreakers = make(map[string][]string, len(c.Tags.AncestorBreakers))
		for tag, breakers := range c.Tags.AncestorBreakers {
			clone.Tags.AncestorBreakers[tag] = copyStrings(breakers)
		}
	}

	return clone
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
