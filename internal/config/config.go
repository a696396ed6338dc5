package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Enhancer variants.
const (
	VariantTemplate  = "template"
	VariantDelegated = "delegated"
)

type Config struct {
	HTTP struct {
		Addr         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	Enhancer struct {
		Variant        string
		AdjectiveCount int
		VocabularyFile string
	}
	LLM struct {
		Provider     string
		APIKey       string
		Model        string
		BaseURL      string
		MaxTokens    int
		Timeout      time.Duration
		Retries      int
		RetryBackoff time.Duration
	}
}

// Load reads config from environment (PROMPTARCH_ prefix) and optional prompt-architect.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROMPTARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("prompt-architect")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("enhancer.variant", VariantTemplate)
	v.SetDefault("enhancer.adjective_count", 4)
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.max_tokens", 512)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.retries", 1)
	v.SetDefault("llm.retry_backoff", "500ms")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Enhancer.Variant = strings.ToLower(v.GetString("enhancer.variant"))
	cfg.Enhancer.AdjectiveCount = v.GetInt("enhancer.adjective_count")
	cfg.Enhancer.VocabularyFile = v.GetString("enhancer.vocabulary_file")
	cfg.LLM.Provider = strings.ToLower(v.GetString("llm.provider"))
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.Retries = v.GetInt("llm.retries")

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"http.read_timeout", &cfg.HTTP.ReadTimeout},
		{"http.write_timeout", &cfg.HTTP.WriteTimeout},
		{"llm.timeout", &cfg.LLM.Timeout},
		{"llm.retry_backoff", &cfg.LLM.RetryBackoff},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(v.GetString(d.key))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envName(d.key), err)
		}
		*d.dst = parsed
	}

	switch cfg.Enhancer.Variant {
	case VariantTemplate, VariantDelegated:
	default:
		return nil, fmt.Errorf("%s must be %q or %q, got %q",
			envName("enhancer.variant"), VariantTemplate, VariantDelegated, cfg.Enhancer.Variant)
	}
	if cfg.Enhancer.AdjectiveCount < 1 {
		return nil, fmt.Errorf("%s must be at least 1", envName("enhancer.adjective_count"))
	}
	if cfg.LLM.Retries < 0 {
		return nil, fmt.Errorf("%s must not be negative", envName("llm.retries"))
	}
	if cfg.LLM.Timeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", envName("llm.timeout"))
	}

	if cfg.Enhancer.Variant == VariantDelegated {
		switch cfg.LLM.Provider {
		case "anthropic", "openai", "openai-compatible":
		default:
			return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
		}
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("%s is required when the delegated enhancer is enabled", envName("llm.api_key"))
		}
	}

	return cfg, nil
}

func envName(key string) string {
	return "PROMPTARCH_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
