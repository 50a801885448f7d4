package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMin < 0 {
		return fmt.Errorf("server.rate_limit_per_min must be >= 0 (got %d)", c.Server.RateLimitPerMin)
	}

	if err := c.OpenAI.validate(); err != nil {
		return fmt.Errorf("openai: %w", err)
	}
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	return nil
}

func (c *OpenAIConfig) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxCompletionTokens <= 0 {
		return fmt.Errorf("max_completion_tokens must be > 0 (got %d)", c.MaxCompletionTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", c.Temperature)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", c.RequestTimeout)
	}
	return nil
}

func (c *GenerationConfig) validate() error {
	if c.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be > 0 (got %d)", c.DefaultCount)
	}
	if c.MaxCount < c.DefaultCount {
		return fmt.Errorf("max_count must be >= default_count (got %d < %d)", c.MaxCount, c.DefaultCount)
	}
	if c.KnownTermsBudget <= 0 {
		return fmt.Errorf("known_terms_budget must be > 0 (got %d)", c.KnownTermsBudget)
	}
	return nil
}
