package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI and the dev server.
type Config struct {
	Addr          string        `env:"SRDVIEW_ADDR" envDefault:"127.0.0.1:5173"`
	APIPrefix     string        `env:"SRDVIEW_API_PREFIX" envDefault:"/api"`
	APIOrigin     string        `env:"SRDVIEW_API_ORIGIN" envDefault:"https://dndapi.giuseppedallape.com/"`
	AllowedHosts  []string      `env:"SRDVIEW_ALLOWED_HOSTS" envSeparator:","`
	Locale        string        `env:"SRDVIEW_LOCALE" envDefault:"it-IT"`
	LayoutsDir    string        `env:"SRDVIEW_LAYOUTS_DIR"`
	LabelsDir     string        `env:"SRDVIEW_LABELS_DIR"`
	ShutdownGrace time.Duration `env:"SRDVIEW_SHUTDOWN_GRACE" envDefault:"5s"`
	Debug         bool          `env:"SRDVIEW_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalises the prefix and checks the origin.
func (c *Config) Validate() error {
	prefix := strings.TrimSpace(c.APIPrefix)
	if prefix == "" || prefix == "/" {
		return fmt.Errorf("config: api prefix must name a path, got %q", c.APIPrefix)
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	c.APIPrefix = strings.TrimRight(prefix, "/")

	origin, err := url.Parse(strings.TrimSpace(c.APIOrigin))
	if err != nil {
		return fmt.Errorf("config: parse api origin: %w", err)
	}
	if origin.Scheme != "http" && origin.Scheme != "https" || origin.Host == "" {
		return fmt.Errorf("config: api origin %q must be an absolute http(s) URL", c.APIOrigin)
	}

	hosts := make([]string, 0, len(c.AllowedHosts))
	for _, host := range c.AllowedHosts {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			hosts = append(hosts, host)
		}
	}
	c.AllowedHosts = hosts

	if c.ShutdownGrace < 0 {
		return fmt.Errorf("config: shutdown grace must not be negative")
	}
	return nil
}

// Origin returns the parsed API origin. Call Validate first.
func (c Config) Origin() *url.URL {
	origin, _ := url.Parse(strings.TrimSpace(c.APIOrigin))
	return origin
}
