package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the market dashboard gateway.
type Config struct {
	// Upstream provider credentials and address
	YahooAPIKey  string `mapstructure:"yahoo_finance_api_key"`
	YahooHost    string `mapstructure:"yahoo_finance_host"`
	YahooBaseURL string `mapstructure:"yahoo_finance_base_url"`

	// Gateway HTTP server
	ListenAddr      string        `mapstructure:"listen_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - YAHOO_FINANCE_API_KEY
//   - YAHOO_FINANCE_HOST (optional, defaults to production)
//   - YAHOO_FINANCE_BASE_URL (optional, defaults to production)
//   - LISTEN_ADDR (optional, defaults to :8080)
//
// A missing API key is deliberately not a load error: the gateway must come up
// and answer every route with the fixed "not configured" error instead.
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("yahoo_finance_host", "yh-finance.p.rapidapi.com")
	v.SetDefault("yahoo_finance_base_url", "https://yh-finance.p.rapidapi.com")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.marketdash")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("yahoo_finance_api_key", "YAHOO_FINANCE_API_KEY")
	v.BindEnv("yahoo_finance_host", "YAHOO_FINANCE_HOST")
	v.BindEnv("yahoo_finance_base_url", "YAHOO_FINANCE_BASE_URL")
	v.BindEnv("listen_addr", "LISTEN_ADDR")
	v.BindEnv("read_timeout", "READ_TIMEOUT")
	v.BindEnv("write_timeout", "WRITE_TIMEOUT")
	v.BindEnv("shutdown_timeout", "SHUTDOWN_TIMEOUT")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

// Configured reports whether the upstream credential is present.
func (c *Config) Configured() bool {
	return c.YahooAPIKey != ""
}
