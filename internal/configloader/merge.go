package configloader

import "github.com/yaklabco/tagsoup/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Breaker maps: deep merge, with override's values taking precedence
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Input != "" {
		result.Input = override.Input
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	// Booleans: false is the zero value, so a layer can only switch these
	// on. CLI flags override, but a config file cannot unset a lower layer.
	if override.IncludePositions {
		result.IncludePositions = true
	}
	if override.Pretty {
		result.Pretty = true
	}
	if override.Debug {
		result.Debug = true
	}

	// Slices: override replaces base entirely if non-nil
	if override.Tags.Void != nil {
		result.Tags.Void = override.Tags.Void
	}
	if override.Tags.Closing != nil {
		result.Tags.Closing = override.Tags.Closing
	}
	if override.Tags.Childless != nil {
		result.Tags.Childless = override.Tags.Childless
	}

	result.Tags.AncestorBreakers = mergeBreakers(
		base.Tags.AncestorBreakers, override.Tags.AncestorBreakers)

	return &result
}

// mergeBreakers performs a per-tag merge of ancestor breaker maps.
// Override entries replace base entries for the same tag.
func mergeBreakers(base, override map[string][]string) map[string][]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string][]string, len(base)+len(override))
	for tag, breakers := range base {
		result[tag] = breakers
	}
	for tag, breakers := range override {
		result[tag] = breakers
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
