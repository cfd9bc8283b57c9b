package configloader

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/config"
)

// envVarPrefix is the prefix for all cookfmt environment variables.
const envVarPrefix = "COOKFMT_"

// envSetter applies one environment value to a config.
type envSetter func(cfg *config.Config, value string) error

// envVar describes one supported environment variable.
type envVar struct {
	set         envSetter
	description string
}

// envVars maps variable names, without prefix, to their setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"LANGUAGE": {
		set:         func(cfg *config.Config, v string) error { cfg.Language = v; return nil },
		description: "Language used when detection fails",
	},
	"QUERY": {
		set:         func(cfg *config.Config, v string) error { cfg.Query = v; return nil },
		description: "Query file applied to every source",
	},
	"JOBS": {
		set: func(cfg *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Errorf("invalid integer %q", v)
			}
			cfg.Jobs = n
			return nil
		},
		description: "Number of files formatted at once (0 = auto)",
	},
	"EXCLUDE": {
		set:         func(cfg *config.Config, v string) error { cfg.Exclude = parseSliceValue(v); return nil },
		description: "Comma-separated list of exclude patterns",
	},
	"BACKUP": {
		set: func(cfg *config.Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Errorf("invalid boolean %q (expected true/false/1/0)", v)
			}
			cfg.Backup = b
			return nil
		},
		description: "Keep a sidecar copy of rewritten files: true or false",
	},
	"INDENT_STYLE": {
		set:         func(cfg *config.Config, v string) error { cfg.Defaults.IndentStyle = &v; return nil },
		description: "Default indentation unit",
	},
	"CPL": {
		set: func(cfg *config.Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 0)
			if err != nil {
				return errors.Errorf("invalid characters-per-line %q", v)
			}
			cpl := uint(n)
			cfg.Defaults.Cpl = &cpl
			return nil
		},
		description: "Default characters-per-line limit (0 = unlimited)",
	},
}

// LoadFromEnv applies COOKFMT_* overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range slices.Sorted(func(yield func(string) bool) {
		for k := range envVars {
			if !yield(k) {
				return
			}
		}
	}) {
		name := envVarPrefix + suffix
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		if err := envVars[suffix].set(cfg, value); err != nil {
			return errors.WithDetails(err, "env", name)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated value, trimming each element.
func parseSliceValue(value string) []string {
	var result []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.description
	}
	return out
}
