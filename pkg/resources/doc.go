// Package resources holds the configuration schema for static-resource
// serving: where static assets live, how the Cache-Control response header is
// composed, and which features of the resource-resolution chain are enabled.
//
// The package is a passive schema with light derivation logic. It does not
// resolve files, rewrite URLs, or serve responses; a resource-serving
// pipeline reads the bound Config and applies it.
//
// # Basic Usage
//
//	cfg := resources.DefaultConfig()
//	cfg.SetStaticLocations([]string{"assets", "web/dist/"})
//	cfg.CacheControl.MaxAge = resources.Duration(time.Hour)
//	cfg.CacheControl.CachePublic = resources.Bool(true)
//
//	// Value for the Cache-Control response header.
//	header := cfg.CacheControlHeader() // "max-age=3600, public"
//
// # Binding From Configuration Keys
//
// Bind populates a Config from dotted keys under the "resources." namespace,
// rejecting unknown keys:
//
//	cfg, err := resources.Bind(map[string]string{
//		"resources.static-locations":             "assets,web/dist",
//		"resources.cache-control.max-age":        "1h",
//		"resources.chain.strategy.fixed.enabled": "true",
//		"resources.chain.strategy.fixed.version": "v12",
//	})
//	if err != nil {
//		var cfgErr *resources.ConfigurationError
//		if errors.As(err, &cfgErr) {
//			// cfgErr.Key names the offending entry
//		}
//	}
//
// # Concurrency
//
// A Config is written once, during startup, by a single goroutine (either
// programmatically or through Bind) and read concurrently afterwards. No
// field may be mutated once the configuration is in use.
package resources
