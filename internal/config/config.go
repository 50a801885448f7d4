package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port            int           `yaml:"port"               env:"SERVER_PORT"               env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// OpenAIConfig holds settings for the LLM generation client.
// APIKey is deliberately not required at startup: a missing credential
// surfaces as an upstream-unavailable error on the first generation call.
type OpenAIConfig struct {
	APIKey              string        `yaml:"api_key"               env:"OPENAI_API_KEY"`
	BaseURL             string        `yaml:"base_url"              env:"OPENAI_BASE_URL"`
	Model               string        `yaml:"model"                 env:"OPENAI_MODEL"                 env-default:"gpt-4o"`
	MaxCompletionTokens int           `yaml:"max_completion_tokens" env:"OPENAI_MAX_COMPLETION_TOKENS" env-default:"10000"`
	Temperature         float32       `yaml:"temperature"           env:"OPENAI_TEMPERATURE"           env-default:"0.7"`
	JSONMode            bool          `yaml:"json_mode"             env:"OPENAI_JSON_MODE"             env-default:"true"`
	RequestTimeout      time.Duration `yaml:"request_timeout"       env:"OPENAI_REQUEST_TIMEOUT"       env-default:"120s"`
}

// GenerationConfig holds batch-generation settings.
type GenerationConfig struct {
	DefaultCount     int `yaml:"default_count"      env:"GENERATION_DEFAULT_COUNT"      env-default:"50"`
	MaxCount         int `yaml:"max_count"          env:"GENERATION_MAX_COUNT"          env-default:"100"`
	KnownTermsBudget int `yaml:"known_terms_budget" env:"GENERATION_KNOWN_TERMS_BUDGET" env-default:"800"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
