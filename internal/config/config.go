// Package config provides configuration management for the gocompare
// application. It handles loading, validation, and access to configuration
// values from YAML files and environment variables via Viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/gocompare/internal/logger"
)

// Content client defaults.
const (
	defaultContentTimeout = 30 * time.Second
	defaultSearchPageSize = 10
)

// Comparison defaults.
const (
	defaultDebounceDelay = 500 * time.Millisecond
)

// Server defaults.
const (
	defaultServerAddress      = ":8080"
	defaultServerReadTimeout  = 30 * time.Second
	defaultServerWriteTimeout = 30 * time.Second
	defaultServerIdleTimeout  = 60 * time.Second
)

// Interface defines the interface for configuration management.
type Interface interface {
	// GetContentConfig returns the content API configuration.
	GetContentConfig() *ContentConfig
	// GetCompareConfig returns the comparison configuration.
	GetCompareConfig() *CompareConfig
	// GetServerConfig returns the HTTP server configuration.
	GetServerConfig() *ServerConfig
	// GetLogConfig returns the logging configuration.
	GetLogConfig() *logger.Config
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// ContentConfig holds settings for the remote GraphQL content API.
type ContentConfig struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string `yaml:"endpoint"`
	// Timeout bounds each request to the content API.
	Timeout time.Duration `yaml:"timeout"`
	// SearchPageSize is the number of results requested per search.
	SearchPageSize int `yaml:"search_page_size"`
}

// CompareConfig holds settings for the comparison screen.
type CompareConfig struct {
	// DebounceDelay is how long a search query must be stable before a
	// search request is issued.
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// Config represents the application configuration.
type Config struct {
	// Content holds content API configuration
	Content *ContentConfig `yaml:"content"`
	// Compare holds comparison screen configuration
	Compare *CompareConfig `yaml:"compare"`
	// Server holds HTTP server configuration
	Server *ServerConfig `yaml:"server"`
	// Log holds logging configuration
	Log *logger.Config `yaml:"log"`
}

// GetContentConfig returns the content API configuration.
func (c *Config) GetContentConfig() *ContentConfig { return c.Content }

// GetCompareConfig returns the comparison configuration.
func (c *Config) GetCompareConfig() *CompareConfig { return c.Compare }

// GetServerConfig returns the HTTP server configuration.
func (c *Config) GetServerConfig() *ServerConfig { return c.Server }

// GetLogConfig returns the logging configuration.
func (c *Config) GetLogConfig() *logger.Config { return c.Log }

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Content == nil || c.Content.Endpoint == "" {
		return ErrMissingEndpoint
	}
	parsed, err := url.Parse(c.Content.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Content.Endpoint)
	}
	if c.Content.Timeout <= 0 {
		return fmt.Errorf("%w: content timeout must be positive", ErrInvalidValue)
	}
	if c.Content.SearchPageSize <= 0 {
		return fmt.Errorf("%w: search page size must be positive", ErrInvalidValue)
	}
	if c.Compare.DebounceDelay <= 0 {
		return fmt.Errorf("%w: debounce delay must be positive", ErrInvalidValue)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server address must not be empty", ErrInvalidValue)
	}
	return nil
}

// setDefaults registers default values on the given Viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("content.timeout", defaultContentTimeout)
	v.SetDefault("content.search_page_size", defaultSearchPageSize)
	v.SetDefault("compare.debounce_delay", defaultDebounceDelay)
	v.SetDefault("server.address", defaultServerAddress)
	v.SetDefault("server.read_timeout", defaultServerReadTimeout)
	v.SetDefault("server.write_timeout", defaultServerWriteTimeout)
	v.SetDefault("server.idle_timeout", defaultServerIdleTimeout)
	v.SetDefault("log.level", string(logger.InfoLevel))
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
}

// Load reads configuration from the given file (optional) and the
// environment, applies defaults, and validates the result.
// Environment variables use the GOCOMPARE_ prefix with underscores,
// e.g. GOCOMPARE_CONTENT_ENDPOINT.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GOCOMPARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Content: &ContentConfig{
			Endpoint:       v.GetString("content.endpoint"),
			Timeout:        v.GetDuration("content.timeout"),
			SearchPageSize: v.GetInt("content.search_page_size"),
		},
		Compare: &CompareConfig{
			DebounceDelay: v.GetDuration("compare.debounce_delay"),
		},
		Server: &ServerConfig{
			Address:      v.GetString("server.address"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		Log: &logger.Config{
			Level:       logger.Level(v.GetString("log.level")),
			Encoding:    v.GetString("log.encoding"),
			Development: v.GetBool("log.development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
