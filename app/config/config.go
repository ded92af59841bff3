package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the front-end needs to talk to the backend API
// and serve pages. All values come from the environment; a local .env file
// is honoured when present.
type Config struct {
	ListenAddr        string
	BackendBaseURL    string
	BackendTimeout    time.Duration
	PaymentPollEvery  time.Duration
	PaymentPollLimit  int
	SessionCookieName string
	SessionTTL        time.Duration
	StaticDir         string
	TemplateDir       string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; real deployments inject env vars directly.
	}

	cfg := &Config{
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		BackendBaseURL:    os.Getenv("BACKEND_API_URL"),
		BackendTimeout:    getduration("BACKEND_TIMEOUT", 15*time.Second),
		PaymentPollEvery:  getduration("PAYMENT_POLL_INTERVAL", 5*time.Second),
		PaymentPollLimit:  getint("PAYMENT_POLL_MAX_ATTEMPTS", 60),
		SessionCookieName: getenv("SESSION_COOKIE", "mbg_session"),
		SessionTTL:        getduration("SESSION_TTL", 24*time.Hour),
		StaticDir:         getenv("STATIC_DIR", "./static"),
		TemplateDir:       getenv("TEMPLATE_DIR", "./app/templates"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BackendBaseURL) == "" {
		return fmt.Errorf("config: BACKEND_API_URL is required")
	}
	parsed, err := url.Parse(c.BackendBaseURL)
	if err != nil {
		return fmt.Errorf("config: BACKEND_API_URL invalid (%q): %w", c.BackendBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: BACKEND_API_URL invalid (%q): missing scheme or host", c.BackendBaseURL)
	}
	c.BackendBaseURL = strings.TrimRight(c.BackendBaseURL, "/")

	if c.PaymentPollEvery <= 0 {
		return fmt.Errorf("config: PAYMENT_POLL_INTERVAL must be positive")
	}
	if c.PaymentPollLimit <= 0 {
		return fmt.Errorf("config: PAYMENT_POLL_MAX_ATTEMPTS must be positive")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
