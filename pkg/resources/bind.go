package resources

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/webstack-go/staticres/pkg/logging"
)

// keyPrefix is the configuration namespace this schema binds.
const keyPrefix = "resources."

// Bind populates a Config from named configuration entries. Keys are dotted
// names under the "resources." namespace, e.g.
//
//	resources.static-locations
//	resources.cache-control.max-age
//	resources.chain.strategy.fixed.enabled
//
// Binding is strict: an unknown key under the namespace fails with a
// ConfigurationError wrapping ErrUnknownKey. Keys outside the namespace
// belong to other subsystems and are ignored. Duration values accept a Go
// duration suffix ("90s", "1h30m"); bare integers are seconds. List values
// are comma-separated. Unbound fields keep their DefaultConfig values.
func Bind(props map[string]string) (*Config, error) {
	logger := logging.NewLogger("resources")

	cfg := DefaultConfig()

	keys := make([]string, 0, len(props))
	for key := range props {
		if strings.HasPrefix(key, keyPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := bindEntry(&cfg, strings.TrimPrefix(key, keyPrefix), key, props[key]); err != nil {
			return nil, err
		}
	}

	if cfg.Chain.Strategy.Fixed.Enabled && cfg.Chain.Strategy.Fixed.Version == "" {
		logger.Warn().Msg("fixed versioning strategy enabled without a version")
	}

	logger.Debug().
		Int("entries", len(keys)).
		Strs("static_locations", cfg.StaticLocations).
		Msg("resource configuration bound")

	return &cfg, nil
}

// bindEntry assigns one configuration entry to its field. name is the key
// with the namespace prefix stripped; key is the full key, kept for error
// reporting.
func bindEntry(cfg *Config, name, key, value string) error {
	switch name {
	case "static-locations":
		cfg.SetStaticLocations(splitList(value))
	case "cache-period":
		return bindDuration(&cfg.CachePeriod, key, value)
	case "add-mappings":
		return bindBoolValue(&cfg.AddMappings, key, value)

	case "cache-control.max-age":
		return bindDuration(&cfg.CacheControl.MaxAge, key, value)
	case "cache-control.no-cache":
		return bindBool(&cfg.CacheControl.NoCache, key, value)
	case "cache-control.no-store":
		return bindBool(&cfg.CacheControl.NoStore, key, value)
	case "cache-control.must-revalidate":
		return bindBool(&cfg.CacheControl.MustRevalidate, key, value)
	case "cache-control.no-transform":
		return bindBool(&cfg.CacheControl.NoTransform, key, value)
	case "cache-control.cache-public":
		return bindBool(&cfg.CacheControl.CachePublic, key, value)
	case "cache-control.cache-private":
		return bindBool(&cfg.CacheControl.CachePrivate, key, value)
	case "cache-control.proxy-revalidate":
		return bindBool(&cfg.CacheControl.ProxyRevalidate, key, value)
	case "cache-control.stale-while-revalidate":
		return bindDuration(&cfg.CacheControl.StaleWhileRevalidate, key, value)
	case "cache-control.stale-if-error":
		return bindDuration(&cfg.CacheControl.StaleIfError, key, value)
	case "cache-control.s-max-age":
		return bindDuration(&cfg.CacheControl.SMaxAge, key, value)

	case "chain.enabled":
		return bindBool(&cfg.Chain.Enabled, key, value)
	case "chain.cache":
		return bindBoolValue(&cfg.Chain.Cache, key, value)
	case "chain.html-application-cache":
		return bindBoolValue(&cfg.Chain.HTMLApplicationCache, key, value)
	case "chain.gzipped":
		return bindBoolValue(&cfg.Chain.Gzipped, key, value)

	case "chain.strategy.fixed.enabled":
		return bindBoolValue(&cfg.Chain.Strategy.Fixed.Enabled, key, value)
	case "chain.strategy.fixed.paths":
		cfg.Chain.Strategy.Fixed.Paths = splitList(value)
	case "chain.strategy.fixed.version":
		cfg.Chain.Strategy.Fixed.Version = value

	case "chain.strategy.content.enabled":
		return bindBoolValue(&cfg.Chain.Strategy.Content.Enabled, key, value)
	case "chain.strategy.content.paths":
		cfg.Chain.Strategy.Content.Paths = splitList(value)

	default:
		return &ConfigurationError{Key: key, Err: ErrUnknownKey}
	}
	return nil
}

func bindBoolValue(dst *bool, key, value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return &ConfigurationError{Key: key, Value: value, Err: ErrInvalidValue}
	}
	*dst = parsed
	return nil
}

func bindBool(dst **bool, key, value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return &ConfigurationError{Key: key, Value: value, Err: ErrInvalidValue}
	}
	*dst = &parsed
	return nil
}

func bindDuration(dst **time.Duration, key, value string) error {
	parsed, err := parseDuration(value)
	if err != nil {
		return &ConfigurationError{Key: key, Value: value, Err: ErrInvalidValue}
	}
	*dst = &parsed
	return nil
}

// parseDuration parses a duration value. Bare integers are seconds;
// otherwise the value must carry a Go duration suffix.
func parseDuration(value string) (time.Duration, error) {
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
