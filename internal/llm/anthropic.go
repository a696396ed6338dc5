package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/joestump/prompt-architect/internal/config"
)

type anthropicCompleter struct {
	client *anthropic.Client
	model  string
}

func newAnthropicCompleter(cfg *config.Config) *anthropicCompleter {
	model := cfg.LLM.Model
	if model == "" {
		model = string(anthropic.ModelClaude3_5SonnetLatest)
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithHTTPClient(&http.Client{}),
		// Retries are owned by the delegated enhancer.
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		base := cfg.LLM.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	return &anthropicCompleter{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (a *anthropicCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(a.model)),
		MaxTokens: anthropic.F(int64(req.MaxTokens)),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(req.System),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		}),
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", statusError("anthropic", apiErr.StatusCode, []byte(apiErr.Error()))
		}
		return "", fmt.Errorf("%w: anthropic request: %w", ErrUnavailable, err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		sb.WriteString(block.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("%w: empty response from anthropic", ErrMalformed)
	}
	return sb.String(), nil
}
