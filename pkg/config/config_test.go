package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// Init is guarded by a sync.Once, so the whole package shares one
// initialized viper instance across these tests.
func TestInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	t.Run("defaults", func(t *testing.T) {
		if got := GetInt("server.port"); got != 8080 {
			t.Errorf("Expected default server.port to be 8080, got %d", got)
		}
		if got := GetString("database.path"); got != "./data/ninja_index.db" {
			t.Errorf("Expected default database.path, got %s", got)
		}
		if got := GetString("anthropic.model"); got != "claude-sonnet-4-5" {
			t.Errorf("Expected default anthropic.model, got %s", got)
		}
		if got := GetInt("search.limit"); got != 10 {
			t.Errorf("Expected default search.limit to be 10, got %d", got)
		}
		if got := GetInt("search.threshold"); got != 45 {
			t.Errorf("Expected default search.threshold to be 45, got %d", got)
		}
		if got := GetInt("search.min_query_length"); got != 2 {
			t.Errorf("Expected default search.min_query_length to be 2, got %d", got)
		}
		if got := GetString("roster.path"); got != "./data/known_athletes.json" {
			t.Errorf("Expected default roster.path, got %s", got)
		}
		if !GetBool("processing.fetch_metadata") {
			t.Error("Expected processing.fetch_metadata to default to true")
		}
	})

	t.Run("environment variable override", func(t *testing.T) {
		os.Setenv("NINJA_SERVER_PORT", "9090")
		defer os.Unsetenv("NINJA_SERVER_PORT")

		if got := GetInt("server.port"); got != 9090 {
			t.Errorf("Expected server.port to be overridden to 9090, got %d", got)
		}
	})

	t.Run("unmarshal into struct", func(t *testing.T) {
		cfg, err := GetConfig()
		if err != nil {
			t.Fatalf("GetConfig() error = %v", err)
		}
		if cfg.Server.Port != 8080 {
			t.Errorf("Expected cfg.Server.Port to be 8080, got %d", cfg.Server.Port)
		}
		if len(cfg.YouTube.Languages) == 0 || cfg.YouTube.Languages[0] != "en" {
			t.Errorf("Expected cfg.YouTube.Languages to default to [en], got %v", cfg.YouTube.Languages)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Database: DatabaseConfig{
					Path: "./data/ninja_index.db",
				},
				Search: SearchConfig{Limit: 10, Threshold: 45, MinQueryLength: 2},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 0,
				},
			},
			wantErr: true,
		},
		{
			name: "empty database path is allowed",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCorrectsSearchKnobs(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Search: SearchConfig{Limit: -1, Threshold: 400, MinQueryLength: 0},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Search.Limit != 10 {
		t.Errorf("Expected limit to be corrected to 10, got %d", cfg.Search.Limit)
	}
	if cfg.Search.Threshold != 45 {
		t.Errorf("Expected threshold to be corrected to 45, got %d", cfg.Search.Threshold)
	}
	if cfg.Search.MinQueryLength != 2 {
		t.Errorf("Expected min query length to be corrected to 2, got %d", cfg.Search.MinQueryLength)
	}
}

func TestGetDuration(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if viper.GetDuration("server.shutdown_timeout") != GetDuration("server.shutdown_timeout") {
		t.Error("Expected GetDuration to read through viper")
	}
	if GetDuration("server.shutdown_timeout") <= 0 {
		t.Error("Expected a positive default shutdown timeout")
	}
}
