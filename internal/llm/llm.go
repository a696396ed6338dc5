// Package llm talks to external text-completion services.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/joestump/prompt-architect/internal/config"
)

// Failure categories. Provider errors wrap exactly one of these.
var (
	// ErrUnavailable covers network failures, timeouts and 5xx responses.
	// It is the only category worth retrying.
	ErrUnavailable = errors.New("llm: provider unavailable")
	ErrAuth        = errors.New("llm: authentication failed")
	ErrQuota       = errors.New("llm: quota or rate limit exceeded")
	ErrRejected    = errors.New("llm: request rejected")
	ErrMalformed   = errors.New("llm: malformed response")
)

// CompletionRequest is a single system+user exchange.
type CompletionRequest struct {
	System    string
	User      string
	MaxTokens int
}

// Completer returns the provider's text response for a request.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// New creates a Completer for the configured provider.
func New(cfg *config.Config) (Completer, error) {
	switch cfg.LLM.Provider {
	case "anthropic":
		return newAnthropicCompleter(cfg), nil
	case "openai", "openai-compatible":
		return newOpenAICompleter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}

// statusError maps a non-200 provider status onto a failure category.
func statusError(provider string, status int, body []byte) error {
	var kind error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrAuth
	case status == http.StatusTooManyRequests || status == http.StatusPaymentRequired:
		kind = ErrQuota
	case status == http.StatusRequestTimeout || status >= 500:
		kind = ErrUnavailable
	default:
		kind = ErrRejected
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return fmt.Errorf("%w: %s API returned %d: %s", kind, provider, status, body)
}
