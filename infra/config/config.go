package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// Config holds application-level configuration.
type Config struct {
	Env        string        `env:"PINKSOCIAL_ENV" env-default:"production" env-description:"runtime environment (development enables console logs)"`
	LogLevel   string        `env:"PINKSOCIAL_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Dir        string        `env:"PINKSOCIAL_CONFIG_DIR" env-description:"directory for prefs.json and pinksocial.log (default ~/.config/pinksocial)"`
	GeoURL     string        `env:"PINKSOCIAL_GEO_URL" env-default:"https://ipapi.co/json/" env-description:"IP geolocation endpoint returning country_code"`
	GeoTimeout time.Duration `env:"PINKSOCIAL_GEO_TIMEOUT" env-default:"5s" env-description:"geolocation request timeout"`
	PageDelay  time.Duration `env:"PINKSOCIAL_PAGE_DELAY" env-default:"1500ms" env-description:"simulated latency of a feed page load"`
	PageSize   int           `env:"PINKSOCIAL_PAGE_SIZE" env-default:"3" env-description:"posts generated per feed page"`
	Language   string        `env:"PINKSOCIAL_LANGUAGE" env-description:"force english or vietnamese for this session"`

	PrefsPath string
	LogPath   string
}

// Load reads configuration from environment variables and derives file paths.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Usage describes every supported environment variable.
func Usage() string {
	var cfg Config
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}

// ForcedLanguage returns the language set through PINKSOCIAL_LANGUAGE.
func (c Config) ForcedLanguage() (domain.Language, bool) {
	if c.Language == "" {
		return "", false
	}
	lang, err := domain.ParseLanguage(c.Language)
	return lang, err == nil
}

// IsDevelopment reports whether console-style logs are wanted.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

func (c *Config) normalize() error {
	parsed, err := url.Parse(c.GeoURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid PINKSOCIAL_GEO_URL: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("invalid PINKSOCIAL_GEO_URL: only http and https are allowed")
	}
	if c.GeoTimeout <= 0 {
		return errors.New("invalid PINKSOCIAL_GEO_TIMEOUT: must be positive")
	}
	if c.PageDelay < 0 {
		return errors.New("invalid PINKSOCIAL_PAGE_DELAY: must not be negative")
	}
	if c.PageSize <= 0 {
		return errors.New("invalid PINKSOCIAL_PAGE_SIZE: must be positive")
	}
	if c.Language != "" {
		if _, err := domain.ParseLanguage(c.Language); err != nil {
			return fmt.Errorf("invalid PINKSOCIAL_LANGUAGE %q: %w", c.Language, err)
		}
	}

	if c.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		c.Dir = filepath.Join(home, ".config", "pinksocial")
	}
	c.PrefsPath = filepath.Join(c.Dir, "prefs.json")
	c.LogPath = filepath.Join(c.Dir, "pinksocial.log")
	return nil
}
