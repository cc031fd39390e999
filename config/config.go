// Package config loads the server settings from the environment and flags,
// and the site identity from a TOML file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration.
type Config struct {
	HTTPAddr       string `env:"ACADEMY_HTTP_ADDR"        envDefault:"localhost:8080"`
	SiteConfig     string `env:"ACADEMY_SITE_CONFIG"      envDefault:"config/site.toml"`
	DataDir        string `env:"ACADEMY_DATA_DIR"         envDefault:"data"`
	LocalesDir     string `env:"ACADEMY_LOCALES_DIR"`
	PostsPerPage   int    `env:"ACADEMY_POSTS_PER_PAGE"   envDefault:"6"`
	CoursesPerPage int    `env:"ACADEMY_COURSES_PER_PAGE" envDefault:"6"`
	OTelEndpoint   string `env:"ACADEMY_OTEL_ENDPOINT"`
}

// Parse loads defaults from the environment and then applies flags.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.parseFlags(fs, args)
}

// ParseWith is Parse with an explicit environment, used by tests.
func ParseWith(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.parseFlags(fs, args)
}

func (cfg Config) parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SiteConfig, "site-config", cfg.SiteConfig, "Path to the site TOML file")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for the contact inbox")
	fs.StringVar(&cfg.LocalesDir, "locales-dir", cfg.LocalesDir, "Directory of <locale>.json translation files (embedded when empty)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return errors.New("config: http address is required")
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return errors.New("config: data directory is required")
	}
	if cfg.PostsPerPage <= 0 {
		return fmt.Errorf("config: posts per page must be positive, got %d", cfg.PostsPerPage)
	}
	if cfg.CoursesPerPage <= 0 {
		return fmt.Errorf("config: courses per page must be positive, got %d", cfg.CoursesPerPage)
	}
	return nil
}
