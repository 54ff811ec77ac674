package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagsoup/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies tag tables", func(t *testing.T) {
		original := &config.Config{
			Tags: config.TagTables{
				Void:      []string{"spacer"},
				Childless: []string{"raw-block"},
				AncestorBreakers: map[string][]string{
					"li": {"details"},
				},
			},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		clone.Tags.Void[0] = "changed"
		clone.Tags.AncestorBreakers["li"][0] = "changed"

		assert.Equal(t, "spacer", original.Tags.Void[0])
		assert.Equal(t, "details", original.Tags.AncestorBreakers["li"][0])
	})

	t.Run("copies CLI-only fields", func(t *testing.T) {
		original := &config.Config{Output: "out.json", Debug: true}
		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, "out.json", clone.Output)
		assert.True(t, clone.Debug)
	})
}

func TestToYAML(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var c *config.Config
		data, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("defaults round trip", func(t *testing.T) {
		original := config.NewConfig()
		original.IncludePositions = true
		original.Tags.Void = []string{"spacer"}

		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)

		assert.Equal(t, original.Input, parsed.Input)
		assert.Equal(t, original.Format, parsed.Format)
		assert.True(t, parsed.IncludePositions)
		assert.Equal(t, []string{"spacer"}, parsed.Tags.Void)
	})

	t.Run("with header", func(t *testing.T) {
		c := config.NewConfig()
		data, err := c.ToYAMLWithHeader("# generated")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "# generated\n"))
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		data := []byte(`
input: markdown
format: tree
include_positions: true
tags:
  void:
    - spacer
  closing:
    - row
  childless:
    - raw-block
  ancestor_breakers:
    li:
      - details
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)

		assert.Equal(t, config.InputMarkdown, cfg.Input)
		assert.Equal(t, config.FormatTree, cfg.Format)
		assert.True(t, cfg.IncludePositions)
		assert.Equal(t, []string{"spacer"}, cfg.Tags.Void)
		assert.Equal(t, []string{"row"}, cfg.Tags.Closing)
		assert.Equal(t, []string{"raw-block"}, cfg.Tags.Childless)
		assert.Equal(t, []string{"details"}, cfg.Tags.AncestorBreakers["li"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("input: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Empty(t, cfg.Input)
	})
}
