package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/shhac/burrow/internal/domain"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool `yaml:"debug"`

	// LogPath overrides the platform log file. "-" logs to stderr.
	LogPath string `yaml:"log_path"`

	// Request holds the defaults for outbound requests. Preferences saved
	// in the UI take precedence.
	Request RequestConfig `yaml:"request"`
}

// RequestConfig configures the HTTP client.
type RequestConfig struct {
	Timeout            time.Duration `yaml:"timeout" default:"0s" validate:"gte=0"`
	FollowRedirects    bool          `yaml:"follow_redirects" default:"true"`
	MaxRedirects       int           `yaml:"max_redirects" default:"10" validate:"gte=0"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
	CACertFile         string        `yaml:"ca_cert_file"`
	ClientCertFile     string        `yaml:"client_cert_file" validate:"required_with=ClientKeyFile"`
	ClientKeyFile      string        `yaml:"client_key_file" validate:"required_with=ClientCertFile"`
	Proxy              string        `yaml:"proxy" validate:"omitempty,url"`
	UserAgent          string        `yaml:"user_agent" default:"burrow"`
}

// ClientSettings converts the request section for the HTTP client.
func (c RequestConfig) ClientSettings() domain.ClientSettings {
	return domain.ClientSettings{
		Timeout:            c.Timeout,
		FollowRedirects:    c.FollowRedirects,
		MaxRedirects:       c.MaxRedirects,
		InsecureSkipVerify: c.InsecureSkipVerify,
		CACertFile:         c.CACertFile,
		ClientCertFile:     c.ClientCertFile,
		ClientKeyFile:      c.ClientKeyFile,
		Proxy:              c.Proxy,
		UserAgent:          c.UserAgent,
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// LoadConfig builds the configuration from defaults, then the YAML file
// named by BURROW_CONFIG (if set), then environment overrides:
// BURROW_DEBUG, BURROW_LOG_PATH, BURROW_TIMEOUT, BURROW_USER_AGENT,
// BURROW_PROXY and BURROW_INSECURE.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("BURROW_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv("BURROW_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BURROW_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}
	if v := os.Getenv("BURROW_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("BURROW_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BURROW_TIMEOUT: %w", err)
		}
		cfg.Request.Timeout = d
	}
	if v := os.Getenv("BURROW_USER_AGENT"); v != "" {
		cfg.Request.UserAgent = v
	}
	if v := os.Getenv("BURROW_PROXY"); v != "" {
		cfg.Request.Proxy = v
	}
	if v := os.Getenv("BURROW_INSECURE"); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BURROW_INSECURE: %w", err)
		}
		cfg.Request.InsecureSkipVerify = insecure
	}
	return nil
}

// Validate checks field constraints.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
