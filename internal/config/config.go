package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"stocktracker/internal/logging"
)

// DefaultFile is read when no path is given and it exists.
const DefaultFile = "config.yaml"

// Interval is the only intraday bar size the service requests.
const Interval = "5min"

type Server struct {
	Port                 string `yaml:"port"`
	ReadHeaderTimeoutSec int    `yaml:"read_header_timeout_sec"`
	ShutdownTimeoutSec   int    `yaml:"shutdown_timeout_sec"`
	// Mode is the gin mode: release, debug or test.
	Mode string `yaml:"mode"`
}

type AlphaVantage struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Interval   string `yaml:"interval"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Config struct {
	Server       Server         `yaml:"server"`
	AlphaVantage AlphaVantage   `yaml:"alphavantage"`
	CORS         CORS           `yaml:"cors"`
	Log          logging.Config `yaml:"log"`
	Metrics      Metrics        `yaml:"metrics"`
}

func Default() Config {
	return Config{
		Server: Server{
			Port:                 "5001",
			ReadHeaderTimeoutSec: 5,
			ShutdownTimeoutSec:   5,
			Mode:                 "release",
		},
		AlphaVantage: AlphaVantage{
			BaseURL:    "https://www.alphavantage.co/query",
			Interval:   Interval,
			TimeoutSec: 10,
		},
		CORS: CORS{AllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:5000",
			"http://localhost:5000",
			"http://127.0.0.1:5500",
			"http://localhost:5500",
		}},
		Log: logging.Config{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Metrics: Metrics{Enabled: true, Path: "/metrics"},
	}
}

// Load reads YAML config from path, falling back to CONFIG_FILE and then
// DefaultFile. A missing file yields defaults. Environment variables are
// applied last so secrets never need to live in the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		cfg.Server.Mode = v
	} else if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_TIMEOUT_SEC"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			cfg.AlphaVantage.TimeoutSec = x
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		if b, ok := parseBool(v); ok {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitCSV(v)
	}
}

// Validate reports configuration that would prevent the server from starting.
// An empty API key is allowed; it is reported per request.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port is required")
	}
	if _, err := strconv.ParseUint(c.Server.Port, 10, 16); err != nil {
		return fmt.Errorf("server.port %q is not a valid port", c.Server.Port)
	}
	switch c.Server.Mode {
	case "", "release", "debug", "test":
	default:
		return fmt.Errorf("server.mode %q must be release, debug or test", c.Server.Mode)
	}
	if c.Server.ShutdownTimeoutSec <= 0 {
		return errors.New("server.shutdown_timeout_sec must be positive")
	}
	if c.AlphaVantage.TimeoutSec <= 0 {
		return errors.New("alphavantage.timeout_sec must be positive")
	}
	if c.AlphaVantage.Interval != Interval {
		return fmt.Errorf("alphavantage.interval %q is not supported; only %s bars are served", c.AlphaVantage.Interval, Interval)
	}
	u, err := url.Parse(c.AlphaVantage.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("alphavantage.base_url %q is not an absolute URL", c.AlphaVantage.BaseURL)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path)
	}
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	}
	return false, false
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
