package enhancer

import (
	"fmt"

	"github.com/joestump/prompt-architect/internal/config"
	"github.com/joestump/prompt-architect/internal/llm"
)

// New builds the enhancer selected by cfg.Enhancer.Variant.
func New(cfg *config.Config) (Enhancer, error) {
	switch cfg.Enhancer.Variant {
	case config.VariantTemplate, "":
		vocab, err := LoadVocabulary(cfg.Enhancer.VocabularyFile)
		if err != nil {
			return nil, err
		}
		return NewTemplate(vocab, WithAdjectiveCount(cfg.Enhancer.AdjectiveCount)), nil
	case config.VariantDelegated:
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("delegated enhancer requires an LLM API key")
		}
		completer, err := llm.New(cfg)
		if err != nil {
			return nil, err
		}
		return NewDelegated(completer, DelegatedOptions{
			Provider:     cfg.LLM.Provider,
			MaxTokens:    cfg.LLM.MaxTokens,
			Timeout:      cfg.LLM.Timeout,
			Retries:      cfg.LLM.Retries,
			RetryBackoff: cfg.LLM.RetryBackoff,
		}), nil
	default:
		return nil, fmt.Errorf("unknown enhancer variant %q", cfg.Enhancer.Variant)
	}
}
