package cachecontrol

import (
	"strconv"
	"strings"
	"time"
)

// CacheControl assembles a Cache-Control header value from individual
// directives. The zero value is equivalent to Empty().
type CacheControl struct {
	maxAge  *time.Duration
	noCache bool
	noStore bool

	mustRevalidate  bool
	noTransform     bool
	cachePublic     bool
	cachePrivate    bool
	proxyRevalidate bool

	staleWhileRevalidate *time.Duration
	staleIfError         *time.Duration
	sMaxAge              *time.Duration
}

// Empty returns a CacheControl with no base caching directive. Appended
// directives (if any) still render.
func Empty() CacheControl {
	return CacheControl{}
}

// MaxAge returns a CacheControl with a "max-age" base directive. The duration
// renders as whole seconds, truncated.
func MaxAge(d time.Duration) CacheControl {
	return CacheControl{maxAge: &d}
}

// NoCache returns a CacheControl with a "no-cache" base directive: the
// response may be reused only after revalidation with the origin server.
func NoCache() CacheControl {
	return CacheControl{noCache: true}
}

// NoStore returns a CacheControl with a "no-store" base directive: the
// response must not be cached at all.
func NoStore() CacheControl {
	return CacheControl{noStore: true}
}

// MustRevalidate adds the "must-revalidate" directive.
func (cc CacheControl) MustRevalidate() CacheControl {
	cc.mustRevalidate = true
	return cc
}

// NoTransform adds the "no-transform" directive.
func (cc CacheControl) NoTransform() CacheControl {
	cc.noTransform = true
	return cc
}

// CachePublic adds the "public" directive.
func (cc CacheControl) CachePublic() CacheControl {
	cc.cachePublic = true
	return cc
}

// CachePrivate adds the "private" directive.
func (cc CacheControl) CachePrivate() CacheControl {
	cc.cachePrivate = true
	return cc
}

// ProxyRevalidate adds the "proxy-revalidate" directive.
func (cc CacheControl) ProxyRevalidate() CacheControl {
	cc.proxyRevalidate = true
	return cc
}

// StaleWhileRevalidate adds the "stale-while-revalidate" directive (RFC 5861).
func (cc CacheControl) StaleWhileRevalidate(d time.Duration) CacheControl {
	cc.staleWhileRevalidate = &d
	return cc
}

// StaleIfError adds the "stale-if-error" directive (RFC 5861).
func (cc CacheControl) StaleIfError(d time.Duration) CacheControl {
	cc.staleIfError = &d
	return cc
}

// SMaxAge adds the "s-maxage" directive, the max-age applied by shared caches.
func (cc CacheControl) SMaxAge(d time.Duration) CacheControl {
	cc.sMaxAge = &d
	return cc
}

// HeaderValue renders the header value. Directive order is stable: the base
// directive first, then boolean directives, then duration directives. An
// empty CacheControl renders as "".
func (cc CacheControl) HeaderValue() string {
	var directives []string

	switch {
	case cc.noStore:
		directives = append(directives, "no-store")
	case cc.noCache:
		directives = append(directives, "no-cache")
	case cc.maxAge != nil:
		directives = append(directives, "max-age="+seconds(*cc.maxAge))
	}

	if cc.mustRevalidate {
		directives = append(directives, "must-revalidate")
	}
	if cc.noTransform {
		directives = append(directives, "no-transform")
	}
	if cc.cachePublic {
		directives = append(directives, "public")
	}
	if cc.cachePrivate {
		directives = append(directives, "private")
	}
	if cc.proxyRevalidate {
		directives = append(directives, "proxy-revalidate")
	}

	if cc.staleWhileRevalidate != nil {
		directives = append(directives, "stale-while-revalidate="+seconds(*cc.staleWhileRevalidate))
	}
	if cc.staleIfError != nil {
		directives = append(directives, "stale-if-error="+seconds(*cc.staleIfError))
	}
	if cc.sMaxAge != nil {
		directives = append(directives, "s-maxage="+seconds(*cc.sMaxAge))
	}

	return strings.Join(directives, ", ")
}

// seconds renders a duration as whole seconds, truncated toward zero.
func seconds(d time.Duration) string {
	return strconv.FormatInt(int64(d/time.Second), 10)
}
