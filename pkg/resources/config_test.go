package resources

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if got, want := len(cfg.StaticLocations), 2; got != want {
		t.Fatalf("len(StaticLocations) = %d, want %d", got, want)
	}
	if cfg.StaticLocations[0] != "static/" || cfg.StaticLocations[1] != "public/" {
		t.Errorf("StaticLocations = %v, want [static/ public/]", cfg.StaticLocations)
	}
	if !cfg.AddMappings {
		t.Error("Expected AddMappings to default to true")
	}
	if !cfg.Chain.Cache {
		t.Error("Expected Chain.Cache to default to true")
	}
	if cfg.Chain.Enabled != nil {
		t.Error("Expected Chain.Enabled to default to unset")
	}
	if cfg.CachePeriod != nil {
		t.Error("Expected CachePeriod to default to unset")
	}
	if got := cfg.Chain.Strategy.Fixed.Paths; len(got) != 1 || got[0] != "/**" {
		t.Errorf("Fixed.Paths = %v, want [/**]", got)
	}
	if got := cfg.Chain.Strategy.Content.Paths; len(got) != 1 || got[0] != "/**" {
		t.Errorf("Content.Paths = %v, want [/**]", got)
	}
	if got := cfg.CacheControlHeader(); got != "" {
		t.Errorf("CacheControlHeader() = %q, want empty", got)
	}
}

func TestConfig_SetStaticLocations(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		want      []string
	}{
		{
			name:      "appends missing trailing slash",
			locations: []string{"assets", "web/dist"},
			want:      []string{"assets/", "web/dist/"},
		},
		{
			name:      "keeps existing trailing slash",
			locations: []string{"static/", "public/"},
			want:      []string{"static/", "public/"},
		},
		{
			name:      "preserves order and duplicates",
			locations: []string{"b", "a", "a/"},
			want:      []string{"b/", "a/", "a/"},
		},
		{
			name:      "empty input",
			locations: []string{},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.SetStaticLocations(tt.locations)

			if len(cfg.StaticLocations) != len(tt.want) {
				t.Fatalf("StaticLocations = %v, want %v", cfg.StaticLocations, tt.want)
			}
			for i, location := range cfg.StaticLocations {
				if location != tt.want[i] {
					t.Errorf("StaticLocations[%d] = %q, want %q", i, location, tt.want[i])
				}
			}
		})
	}
}

func TestChainConfig_EffectiveEnabled(t *testing.T) {
	tests := []struct {
		name           string
		fixedEnabled   bool
		contentEnabled bool
		enabled        *bool
		want           *bool
	}{
		{
			name:         "fixed strategy forces true",
			fixedEnabled: true,
			enabled:      Bool(false),
			want:         Bool(true),
		},
		{
			name:           "content strategy forces true",
			contentEnabled: true,
			want:           Bool(true),
		},
		{
			name:    "explicit true passes through",
			enabled: Bool(true),
			want:    Bool(true),
		},
		{
			name:    "explicit false passes through",
			enabled: Bool(false),
			want:    Bool(false),
		},
		{
			name: "unset passes through",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := ChainConfig{
				Enabled: tt.enabled,
				Strategy: StrategyConfig{
					Fixed:   FixedStrategyConfig{Enabled: tt.fixedEnabled},
					Content: ContentStrategyConfig{Enabled: tt.contentEnabled},
				},
			}

			got := chain.EffectiveEnabled()
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("EffectiveEnabled() = %v, want unset", *got)
			case tt.want != nil && got == nil:
				t.Errorf("EffectiveEnabled() = unset, want %v", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("EffectiveEnabled() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestChainConfig_EffectiveEnabledDoesNotAliasStoredState(t *testing.T) {
	chain := ChainConfig{
		Strategy: StrategyConfig{Fixed: FixedStrategyConfig{Enabled: true}},
	}

	got := chain.EffectiveEnabled()
	*got = false

	if chain.Enabled != nil {
		t.Error("mutating the returned value must not touch the stored setting")
	}
}

func TestCacheControlConfig_HeaderValue(t *testing.T) {
	tests := []struct {
		name string
		cc   CacheControlConfig
		want string
	}{
		{
			name: "all unset",
			cc:   CacheControlConfig{},
			want: "",
		},
		{
			name: "no-store wins over max-age",
			cc: CacheControlConfig{
				NoStore: Bool(true),
				MaxAge:  Duration(60 * time.Second),
			},
			want: "no-store",
		},
		{
			name: "no-store wins over no-cache",
			cc: CacheControlConfig{
				NoStore: Bool(true),
				NoCache: Bool(true),
			},
			want: "no-store",
		},
		{
			name: "no-cache wins over max-age",
			cc: CacheControlConfig{
				NoCache: Bool(true),
				MaxAge:  Duration(60 * time.Second),
			},
			want: "no-cache",
		},
		{
			name: "max-age with boolean directives",
			cc: CacheControlConfig{
				MaxAge:         Duration(120 * time.Second),
				MustRevalidate: Bool(true),
				CachePublic:    Bool(true),
			},
			want: "max-age=120, must-revalidate, public",
		},
		{
			name: "explicit false contributes nothing",
			cc: CacheControlConfig{
				NoStore:     Bool(false),
				NoCache:     Bool(false),
				CachePublic: Bool(false),
			},
			want: "",
		},
		{
			name: "duration directives without base",
			cc: CacheControlConfig{
				StaleWhileRevalidate: Duration(5 * time.Second),
				StaleIfError:         Duration(10 * time.Second),
				SMaxAge:              Duration(30 * time.Second),
			},
			want: "stale-while-revalidate=5, stale-if-error=10, s-maxage=30",
		},
		{
			name: "full combination in stable order",
			cc: CacheControlConfig{
				MaxAge:          Duration(time.Hour),
				NoTransform:     Bool(true),
				CachePrivate:    Bool(true),
				ProxyRevalidate: Bool(true),
				SMaxAge:         Duration(30 * time.Minute),
			},
			want: "max-age=3600, no-transform, private, proxy-revalidate, s-maxage=1800",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cc.HeaderValue(); got != tt.want {
				t.Errorf("HeaderValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_CacheControlHeader(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "nothing configured",
			cfg:  Config{},
			want: "",
		},
		{
			name: "cache period fallback",
			cfg:  Config{CachePeriod: Duration(10 * time.Minute)},
			want: "max-age=600",
		},
		{
			name: "derived value overrides cache period",
			cfg: Config{
				CachePeriod:  Duration(10 * time.Minute),
				CacheControl: CacheControlConfig{NoCache: Bool(true)},
			},
			want: "no-cache",
		},
		{
			name: "cache period of zero still emitted",
			cfg:  Config{CachePeriod: Duration(0)},
			want: "max-age=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.CacheControlHeader(); got != tt.want {
				t.Errorf("CacheControlHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}
