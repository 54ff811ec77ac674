package config

import (
	"strings"

	"github.com/yaklabco/tagsoup/pkg/tags"
	"github.com/yaklabco/tagsoup/pkg/tagsoup"
)

// ParseOptions maps the configuration onto pipeline options: the default
// tag tables extended by any entries from the config file, plus the
// position flag.
func (c *Config) ParseOptions() tagsoup.Options {
	opts := tagsoup.DefaultOptions()
	if c == nil {
		return opts
	}

	opts.IncludePositions = c.IncludePositions

	for _, name := range c.Tags.Void {
		opts.VoidTags.Add(name)
	}
	for _, name := range c.Tags.Closing {
		opts.ClosingTags.Add(name)
	}
	for _, name := range c.Tags.Childless {
		opts.ChildlessTags.Add(name)
	}

	for tag, breakers := range c.Tags.AncestorBreakers {
		key := strings.ToLower(tag)
		set, ok := opts.ClosingTagAncestorBreakers[key]
		if !ok {
			set = tags.NewSet()
			opts.ClosingTagAncestorBreakers[key] = set
		}
		for _, breaker := range breakers {
			set.Add(breaker)
		}
	}

	return opts
}
