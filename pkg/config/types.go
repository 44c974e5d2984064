package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Anthropic   AnthropicConfig  `mapstructure:"anthropic"`
	YouTube     YouTubeConfig    `mapstructure:"youtube"`
	Search      SearchConfig     `mapstructure:"search"`
	Roster      RosterConfig     `mapstructure:"roster"`
	Processing  ProcessingConfig `mapstructure:"processing"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// AnthropicConfig holds settings for the extraction API client
type AnthropicConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// YouTubeConfig holds settings for transcript and metadata fetching
type YouTubeConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Languages []string      `mapstructure:"languages"`
}

// SearchConfig holds fuzzy search tuning knobs
type SearchConfig struct {
	Limit          int `mapstructure:"limit"`
	Threshold      int `mapstructure:"threshold"`
	MinQueryLength int `mapstructure:"min_query_length"`
}

// RosterConfig points at the known-athletes registry file
type RosterConfig struct {
	Path string `mapstructure:"path"`
}

// ProcessingConfig holds pipeline settings
type ProcessingConfig struct {
	FetchMetadata bool          `mapstructure:"fetch_metadata"`
	Timeout       time.Duration `mapstructure:"timeout"`
}
