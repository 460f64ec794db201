package resources

import (
	"strings"
	"time"

	"github.com/webstack-go/staticres/pkg/cachecontrol"
)

// DefaultStaticLocations are the locations scanned for static assets when
// none are configured.
var DefaultStaticLocations = []string{"static/", "public/"}

// DefaultStrategyPaths is the path pattern a versioning strategy applies to
// when none are configured.
var DefaultStrategyPaths = []string{"/**"}

// Config is the root configuration for static-resource serving.
type Config struct {
	// StaticLocations are the locations scanned for static assets, in
	// precedence order. Set through SetStaticLocations so every entry ends
	// with a trailing slash.
	StaticLocations []string

	// CachePeriod is a simple cache period for served resources. It is
	// ignored whenever CacheControl produces a non-empty header value.
	CachePeriod *time.Duration

	// CacheControl composes the Cache-Control response header. Overrides
	// CachePeriod.
	CacheControl CacheControlConfig

	// AddMappings enables automatic registration of the default resource
	// mappings.
	AddMappings bool

	// Chain configures the resource-resolution chain.
	Chain ChainConfig
}

// DefaultConfig returns the configuration used when no entries are bound:
// default locations, default mappings on, chain caching on, no versioning
// strategy and no caching headers.
func DefaultConfig() Config {
	return Config{
		StaticLocations: append([]string(nil), DefaultStaticLocations...),
		AddMappings:     true,
		Chain: ChainConfig{
			Cache: true,
			Strategy: StrategyConfig{
				Fixed:   FixedStrategyConfig{Paths: append([]string(nil), DefaultStrategyPaths...)},
				Content: ContentStrategyConfig{Paths: append([]string(nil), DefaultStrategyPaths...)},
			},
		},
	}
}

// SetStaticLocations replaces the static locations, normalizing each entry
// to end with a trailing slash. Order is preserved and entries are not
// deduplicated or checked for existence.
func (c *Config) SetStaticLocations(locations []string) {
	normalized := make([]string, len(locations))
	for i, location := range locations {
		if strings.HasSuffix(location, "/") {
			normalized[i] = location
		} else {
			normalized[i] = location + "/"
		}
	}
	c.StaticLocations = normalized
}

// CacheControlHeader returns the Cache-Control header value the serving
// pipeline should apply: the value derived from CacheControl, or a plain
// max-age directive from CachePeriod when derivation yields nothing. Returns
// "" when neither is configured, meaning no header should be set.
func (c *Config) CacheControlHeader() string {
	if header := c.CacheControl.HeaderValue(); header != "" {
		return header
	}
	if c.CachePeriod != nil {
		return cachecontrol.MaxAge(*c.CachePeriod).HeaderValue()
	}
	return ""
}

// ChainConfig configures the resource-resolution chain.
type ChainConfig struct {
	// Enabled turns the chain on or off explicitly. Left nil, the chain is
	// enabled only when a versioning strategy is; see EffectiveEnabled.
	Enabled *bool

	// Cache enables in-memory caching of resolved resources within the chain.
	Cache bool

	// HTMLApplicationCache enables HTML5 application cache manifest
	// rewriting.
	HTMLApplicationCache bool

	// Gzipped enables lookup of pre-compressed ".gz" variants of resources.
	Gzipped bool

	// Strategy groups the resource versioning strategies.
	Strategy StrategyConfig
}

// EffectiveEnabled returns whether the chain is enabled. An enabled
// versioning strategy forces the chain on regardless of Enabled; otherwise
// the explicit setting passes through, nil meaning "no preference, caller
// decides the default".
func (c *ChainConfig) EffectiveEnabled() *bool {
	if c.Strategy.Fixed.Enabled || c.Strategy.Content.Enabled {
		enabled := true
		return &enabled
	}
	return c.Enabled
}

// StrategyConfig groups the strategies for embedding a version in resource
// URL paths.
type StrategyConfig struct {
	Fixed   FixedStrategyConfig
	Content ContentStrategyConfig
}

// FixedStrategyConfig configures the versioning strategy based on a fixed
// version string.
type FixedStrategyConfig struct {
	// Enabled turns the fixed versioning strategy on.
	Enabled bool

	// Paths are the patterns the strategy applies to.
	Paths []string

	// Version is the version string embedded in resource URLs. Left empty
	// with Enabled set, the configuration is still accepted; the consuming
	// strategy decides how to handle it.
	Version string
}

// ContentStrategyConfig configures the versioning strategy based on a hash of
// the resource content.
type ContentStrategyConfig struct {
	// Enabled turns the content versioning strategy on.
	Enabled bool

	// Paths are the patterns the strategy applies to.
	Paths []string
}

// CacheControlConfig holds the directives composed into the Cache-Control
// response header. Nil fields contribute nothing. Exactly one base directive
// is emitted, with NoStore taking precedence over NoCache, and NoCache over
// MaxAge.
type CacheControlConfig struct {
	// MaxAge is the maximum time the response may be served from a cache.
	MaxAge *time.Duration

	// NoCache requires revalidation with the server before reuse.
	NoCache *bool

	// NoStore forbids caching the response entirely.
	NoStore *bool

	// MustRevalidate forbids serving the response once stale without
	// revalidation.
	MustRevalidate *bool

	// NoTransform forbids intermediaries from transforming the response
	// content.
	NoTransform *bool

	// CachePublic allows any cache to store the response.
	CachePublic *bool

	// CachePrivate restricts storage to non-shared caches.
	CachePrivate *bool

	// ProxyRevalidate is MustRevalidate for shared caches only.
	ProxyRevalidate *bool

	// StaleWhileRevalidate is the time a stale response may be served while
	// revalidation happens in the background.
	StaleWhileRevalidate *time.Duration

	// StaleIfError is the time a stale response may be served when errors
	// are encountered.
	StaleIfError *time.Duration

	// SMaxAge is the maximum time the response may be served from a shared
	// cache.
	SMaxAge *time.Duration
}

// CacheControl derives the header builder from the configured directives.
// The derivation is total: any combination of fields, including none,
// produces a valid value.
func (c *CacheControlConfig) CacheControl() cachecontrol.CacheControl {
	cc := c.base()
	if isTrue(c.MustRevalidate) {
		cc = cc.MustRevalidate()
	}
	if isTrue(c.NoTransform) {
		cc = cc.NoTransform()
	}
	if isTrue(c.CachePublic) {
		cc = cc.CachePublic()
	}
	if isTrue(c.CachePrivate) {
		cc = cc.CachePrivate()
	}
	if isTrue(c.ProxyRevalidate) {
		cc = cc.ProxyRevalidate()
	}
	if c.StaleWhileRevalidate != nil {
		cc = cc.StaleWhileRevalidate(*c.StaleWhileRevalidate)
	}
	if c.StaleIfError != nil {
		cc = cc.StaleIfError(*c.StaleIfError)
	}
	if c.SMaxAge != nil {
		cc = cc.SMaxAge(*c.SMaxAge)
	}
	return cc
}

// HeaderValue renders the derived Cache-Control header value. Returns ""
// when no directive is configured.
func (c *CacheControlConfig) HeaderValue() string {
	return c.CacheControl().HeaderValue()
}

func (c *CacheControlConfig) base() cachecontrol.CacheControl {
	if isTrue(c.NoStore) {
		return cachecontrol.NoStore()
	}
	if isTrue(c.NoCache) {
		return cachecontrol.NoCache()
	}
	if c.MaxAge != nil {
		return cachecontrol.MaxAge(*c.MaxAge)
	}
	return cachecontrol.Empty()
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// Bool returns a pointer to b, for populating tri-state fields.
func Bool(b bool) *bool {
	return &b
}

// Duration returns a pointer to d, for populating optional duration fields.
func Duration(d time.Duration) *time.Duration {
	return &d
}
