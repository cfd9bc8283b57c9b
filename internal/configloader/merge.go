package configloader

import (
	"maps"

	"github.com/yaklabco/cookfmt/pkg/config"
)

// merge combines two configurations, with override taking precedence.
//   - Scalars: override wins when non-zero
//   - Maps: merged key by key
//   - Slices: override replaces base when non-nil
//   - Pointers: override wins when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Language != "" {
		result.Language = override.Language
	}
	if override.Query != "" {
		result.Query = override.Query
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Mode != "" && override.Mode != config.ModePrint {
		result.Mode = override.Mode
	}
	// false is indistinguishable from unset, so only true overrides.
	if override.Backup {
		result.Backup = true
	}

	result.Queries = mergeMap(result.Queries, override.Queries)
	result.Extensions = mergeMap(result.Extensions, override.Extensions)

	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}

	if override.Defaults.IndentStyle != nil {
		style := *override.Defaults.IndentStyle
		result.Defaults.IndentStyle = &style
	}
	if override.Defaults.Cpl != nil {
		cpl := *override.Defaults.Cpl
		result.Defaults.Cpl = &cpl
	}

	return result
}

func mergeMap(base, override map[string]string) map[string]string {
	result := make(map[string]string, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

// MergeAll merges configurations in order; later ones take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
