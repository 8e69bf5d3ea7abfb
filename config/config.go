package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Rate limit defaults: at most 60 requests per identifier per minute.
const (
	DefaultRateLimitWindow = 60 * time.Second
	DefaultRateLimitMax    = 60
)

// Header holds the branding texts shown by the calendar frontend.
type Header struct {
	Badge    string
	Title    string
	Subtitle string
}

// Config holds all configuration for the application
type Config struct {
	DBUrl           string
	Environment     string
	Port            string
	JWTSecret       string
	JWTExpiry       time.Duration
	DefaultLocale   string
	AllowedOrigins  []string
	MigrationsPath  string
	RateLimitWindow time.Duration
	RateLimitMax    int
	Header          Header
}

// Load loads configuration from environment variables.
// It attempts to load a .env file when not in production; in production
// we rely on system environment variables only.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		DBUrl:           os.Getenv("DATABASE_URL"),
		Port:            os.Getenv("PORT"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiry:       24 * time.Hour,
		DefaultLocale:   os.Getenv("LOCALE"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		RateLimitWindow: DefaultRateLimitWindow,
		RateLimitMax:    DefaultRateLimitMax,
		Header: Header{
			Badge:    os.Getenv("HEADER_BADGE"),
			Title:    os.Getenv("HEADER_TITLE"),
			Subtitle: os.Getenv("HEADER_SUBTITLE"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "tr"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if cfg.Header.Badge == "" {
		cfg.Header.Badge = "Bilgisayar Kavramları Topluluğu"
	}
	if cfg.Header.Title == "" {
		cfg.Header.Title = "Etkinlik Takvimi"
	}
	if cfg.Header.Subtitle == "" {
		cfg.Header.Subtitle = "Kampüs, çevrim içi ve atölye buluşmalarını tek ekranda takip edin."
	}

	if s := os.Getenv("JWT_EXPIRY"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("config: invalid JWT_EXPIRY %q: %w", s, err)
		}
		cfg.JWTExpiry = d
	}
	if s := os.Getenv("RATE_LIMIT_WINDOW_MS"); s != "" {
		ms, err := strconv.Atoi(s)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("config: RATE_LIMIT_WINDOW_MS must be a positive integer, got %q", s)
		}
		cfg.RateLimitWindow = time.Duration(ms) * time.Millisecond
	}
	if s := os.Getenv("RATE_LIMIT_MAX"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: RATE_LIMIT_MAX must be a positive integer, got %q", s)
		}
		cfg.RateLimitMax = n
	}
	if s := os.Getenv("ALLOWED_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DBUrl) == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	return nil
}
