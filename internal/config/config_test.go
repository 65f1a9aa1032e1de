package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	// Set up environment variables
	envVars := map[string]string{
		"YAHOO_FINANCE_API_KEY":  "test_api_key",
		"YAHOO_FINANCE_HOST":     "test.rapidapi.com",
		"YAHOO_FINANCE_BASE_URL": "https://test.rapidapi.com",
		"LISTEN_ADDR":            ":9090",
	}

	for key, value := range envVars {
		os.Setenv(key, value)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"YahooAPIKey", cfg.YahooAPIKey, "test_api_key"},
		{"YahooHost", cfg.YahooHost, "test.rapidapi.com"},
		{"YahooBaseURL", cfg.YahooBaseURL, "https://test.rapidapi.com"},
		{"ListenAddr", cfg.ListenAddr, ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	os.Setenv("YAHOO_FINANCE_API_KEY", "test_api_key")
	defer os.Unsetenv("YAHOO_FINANCE_API_KEY")

	for _, key := range []string{"YAHOO_FINANCE_HOST", "YAHOO_FINANCE_BASE_URL", "LISTEN_ADDR"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.YahooHost != "yh-finance.p.rapidapi.com" {
		t.Errorf("YahooHost = %q, want %q", cfg.YahooHost, "yh-finance.p.rapidapi.com")
	}
	if cfg.YahooBaseURL != "https://yh-finance.p.rapidapi.com" {
		t.Errorf("YahooBaseURL = %q, want %q", cfg.YahooBaseURL, "https://yh-finance.p.rapidapi.com")
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want %v", cfg.ReadTimeout, 10*time.Second)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want %v", cfg.WriteTimeout, 30*time.Second)
	}
}

func TestLoad_MissingAPIKeyIsNotAnError(t *testing.T) {
	os.Unsetenv("YAHOO_FINANCE_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	// The gateway must still start; routes answer 500 until the key appears.
	if cfg.Configured() {
		t.Error("Configured() = true, want false with no API key set")
	}
}

func TestConfigured(t *testing.T) {
	cfg := &Config{}
	if cfg.Configured() {
		t.Error("Configured() = true for empty key")
	}

	cfg.YahooAPIKey = "k"
	if !cfg.Configured() {
		t.Error("Configured() = false for non-empty key")
	}
}
