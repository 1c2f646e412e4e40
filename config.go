package sitemeta

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// envKeys maps environment variables onto the metadata field they override.
var envKeys = []struct {
	key string
	set func(m *SiteMetadata, v string)
}{
	{"SITE_TITLE", func(m *SiteMetadata, v string) { m.Title = v }},
	{"SITE_AUTHOR", func(m *SiteMetadata, v string) { m.Author = v }},
	{"SITE_HEADER_TITLE", func(m *SiteMetadata, v string) { m.HeaderTitle = v }},
	{"SITE_DESCRIPTION", func(m *SiteMetadata, v string) { m.Description = v }},
	{"SITE_LANGUAGE", func(m *SiteMetadata, v string) { m.Language = v }},
	{"SITE_THEME", func(m *SiteMetadata, v string) { m.Theme = Theme(v) }},
	{"SITE_URL", func(m *SiteMetadata, v string) { m.SiteURL = v }},
	{"SITE_REPO", func(m *SiteMetadata, v string) { m.SiteRepo = v }},
	{"SITE_LOGO", func(m *SiteMetadata, v string) { m.SiteLogo = v }},
	{"SITE_SOCIAL_BANNER", func(m *SiteMetadata, v string) { m.SocialBanner = v }},
	{"SITE_MASTODON", func(m *SiteMetadata, v string) { m.Mastodon = v }},
	{"SITE_EMAIL", func(m *SiteMetadata, v string) { m.Email = v }},
	{"SITE_GITHUB", func(m *SiteMetadata, v string) { m.GitHub = v }},
	{"SITE_LINKEDIN", func(m *SiteMetadata, v string) { m.LinkedIn = v }},
	{"SITE_INSTAGRAM", func(m *SiteMetadata, v string) { m.Instagram = v }},
	{"SITE_LOCALE", func(m *SiteMetadata, v string) { m.Locale = v }},
}

// Load builds the site metadata from Default, the YAML (or JSON) file at
// path when path is non-empty, and SITE_* environment variables, in that
// order of increasing precedence. Values are not validated; see Check.
func Load(path string) (SiteMetadata, error) {
	meta := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return SiteMetadata{}, fmt.Errorf("sitemeta: read %s: %w", path, err)
		}
		var fromFile SiteMetadata
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return SiteMetadata{}, fmt.Errorf("sitemeta: parse %s: %w", path, err)
		}
		meta.overlay(fromFile)
	}

	applyEnv(&meta)
	return meta, nil
}

func applyEnv(m *SiteMetadata) {
	for _, k := range envKeys {
		if v := strings.TrimSpace(os.Getenv(k.key)); v != "" {
			k.set(m, v)
		}
	}
}

// ServerConfig holds settings for the metadata publish server.
type ServerConfig struct {
	Addr      string // Listen address (default ":3000")
	StaticDir string // Directory holding siteLogo/socialBanner assets (default "public")
	Strict    bool   // Refuse to start when Check reports violations

	RateLimitRPS   float64 // Requests per second per client (default 20, negative disables)
	RateLimitBurst int     // Burst per client (default 40)

	ShutdownGrace time.Duration // Graceful shutdown budget (default 10s)
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.RateLimitRPS == 0 {
		c.RateLimitRPS = 20
	}
	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = 40
	}
	if c.ShutdownGrace == 0 {
		c.ShutdownGrace = 10 * time.Second
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
