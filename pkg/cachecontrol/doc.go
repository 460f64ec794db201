// Package cachecontrol builds Cache-Control HTTP response header values.
//
// A CacheControl value is created from one of four bases and extended with
// chainable directive methods:
//
//   - Empty() - no base caching directive
//   - MaxAge(d) - "max-age=<seconds>"
//   - NoCache() - "no-cache"
//   - NoStore() - "no-store"
//
// # Basic Usage
//
//	cc := cachecontrol.MaxAge(time.Hour).CachePublic().MustRevalidate()
//	w.Header().Set("Cache-Control", cc.HeaderValue())
//	// Cache-Control: max-age=3600, must-revalidate, public
//
// # Stale Content Directives
//
//	cc := cachecontrol.MaxAge(10 * time.Minute).
//		StaleWhileRevalidate(30 * time.Second).
//		StaleIfError(time.Minute)
//	// max-age=600, stale-while-revalidate=30, stale-if-error=60
//
// Values are immutable: every directive method returns a copy, so a base
// value can be shared and specialized safely. HeaderValue is deterministic
// and emits directives in a stable order. An Empty value with no directives
// renders as "", which callers should treat as "do not set the header".
//
// Directive names follow RFC 7234 and RFC 5861.
package cachecontrol
