package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("NINJA")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice returns a string slice config value
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		fmt.Println("Warning: No database path configured")
	}

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct invalid search knobs
	if viper.GetInt("search.limit") <= 0 {
		viper.Set("search.limit", 10)
	}
	if viper.GetInt("search.threshold") < 0 || viper.GetInt("search.threshold") > 100 {
		viper.Set("search.threshold", 45)
	}
	if viper.GetInt("search.min_query_length") <= 0 {
		viper.Set("search.min_query_length", 2)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	apiKey := viper.GetString("anthropic.api_key")
	for _, placeholder := range placeholders {
		if apiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid Anthropic API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: Anthropic API key is using a placeholder value - extraction will fail")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Search.Limit <= 0 {
		c.Search.Limit = 10
	}
	if c.Search.Threshold < 0 || c.Search.Threshold > 100 {
		c.Search.Threshold = 45
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = 2
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/ninja_index.db")
	viper.SetDefault("database.verbose", false)

	// Anthropic defaults
	viper.SetDefault("anthropic.api_key", "")
	viper.SetDefault("anthropic.model", "claude-sonnet-4-5")
	viper.SetDefault("anthropic.max_tokens", 4096)
	viper.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	viper.SetDefault("anthropic.timeout", 120*time.Second)

	// YouTube defaults
	viper.SetDefault("youtube.base_url", "https://www.youtube.com")
	viper.SetDefault("youtube.timeout", 30*time.Second)
	viper.SetDefault("youtube.languages", []string{"en"})

	// Search defaults
	viper.SetDefault("search.limit", 10)
	viper.SetDefault("search.threshold", 45)
	viper.SetDefault("search.min_query_length", 2)

	// Roster defaults
	viper.SetDefault("roster.path", "./data/known_athletes.json")

	// Processing defaults
	viper.SetDefault("processing.fetch_metadata", true)
	viper.SetDefault("processing.timeout", 5*time.Minute)
}
