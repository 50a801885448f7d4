package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "90s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

openai:
  model: "gpt-4o-mini"
  max_completion_tokens: 4000
  temperature: 0.5
  request_timeout: "60s"

generation:
  default_count: 20
  max_count: 60
  known_terms_budget: 500

log:
  level: "debug"
  format: "text"
`

func TestLoad_FromEnvOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	// Explicit CONFIG_PATH pointing at a missing file must fail.
	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}

	// Without CONFIG_PATH, env + defaults alone must load.
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai.model default: got %q", cfg.OpenAI.Model)
	}
	if cfg.Generation.DefaultCount != 50 {
		t.Errorf("generation.default_count default: got %d, want 50", cfg.Generation.DefaultCount)
	}
	if !cfg.OpenAI.JSONMode {
		t.Error("openai.json_mode should default to true")
	}
}

func TestLoad_FromYAML(t *testing.T) {
	validEnv(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.OpenAI.RequestTimeout != 60*time.Second {
		t.Errorf("openai.request_timeout: got %v, want 60s", cfg.OpenAI.RequestTimeout)
	}
	if cfg.Generation.MaxCount != 60 {
		t.Errorf("generation.max_count: got %d, want 60", cfg.Generation.MaxCount)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format: got %q, want text", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	validEnv(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("OPENAI_MODEL", "gpt-4.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server.port: got %d, want 7070 (env override)", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4.1" {
		t.Errorf("openai.model: got %q, want gpt-4.1 (env override)", cfg.OpenAI.Model)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080, RateLimitPerMin: 60},
			OpenAI: OpenAIConfig{
				Model:               "gpt-4o",
				MaxCompletionTokens: 10000,
				Temperature:         0.7,
				RequestTimeout:      time.Minute,
			},
			Generation: GenerationConfig{DefaultCount: 50, MaxCount: 100, KnownTermsBudget: 800},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"negative rate limit", func(c *Config) { c.Server.RateLimitPerMin = -1 }, true},
		{"empty model", func(c *Config) { c.OpenAI.Model = "" }, true},
		{"zero max tokens", func(c *Config) { c.OpenAI.MaxCompletionTokens = 0 }, true},
		{"temperature too high", func(c *Config) { c.OpenAI.Temperature = 2.5 }, true},
		{"zero timeout", func(c *Config) { c.OpenAI.RequestTimeout = 0 }, true},
		{"zero default count", func(c *Config) { c.Generation.DefaultCount = 0 }, true},
		{"max below default", func(c *Config) { c.Generation.MaxCount = 10 }, true},
		{"zero budget", func(c *Config) { c.Generation.KnownTermsBudget = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
