package enhancer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"

	"github.com/joestump/prompt-architect/internal/llm"
	"github.com/joestump/prompt-architect/internal/metrics"
)

// DelegatedOptions bounds the outbound completion call.
type DelegatedOptions struct {
	Provider     string
	MaxTokens    int
	Timeout      time.Duration // per attempt
	Retries      int           // extra attempts after a transient failure
	RetryBackoff time.Duration
}

// Delegated forwards the seed to an external completion service and returns
// its response verbatim.
type Delegated struct {
	completer llm.Completer
	opts      DelegatedOptions
}

// NewDelegated creates a delegated enhancer. Zero options get usable defaults.
func NewDelegated(c llm.Completer, opts DelegatedOptions) *Delegated {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 512
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = time.Millisecond
	}
	return &Delegated{completer: c, opts: opts}
}

// Enhance implements Enhancer. Only llm.ErrUnavailable failures are retried;
// auth, quota and malformed responses fail immediately. Every failure wraps
// ErrUpstream.
func (d *Delegated) Enhance(ctx context.Context, seed string) (string, error) {
	prompt, err := NormalizeSeed(seed)
	if err != nil {
		return "", err
	}
	system, user, err := llm.Instructions(prompt)
	if err != nil {
		return "", fmt.Errorf("render instructions: %w", err)
	}
	req := llm.CompletionRequest{System: system, User: user, MaxTokens: d.opts.MaxTokens}

	backoff := retry.WithMaxRetries(uint64(d.opts.Retries), retry.NewConstant(d.opts.RetryBackoff))

	var (
		out     string
		attempt int
	)
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			metrics.LLMRetriesTotal.WithLabelValues(d.opts.Provider).Inc()
		}

		callCtx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
		defer cancel()

		text, err := d.completer.Complete(callCtx, req)
		if err != nil {
			if errors.Is(err, llm.ErrUnavailable) && ctx.Err() == nil {
				log.Warn().Err(err).Int("attempt", attempt).Str("provider", d.opts.Provider).
					Msg("completion attempt failed")
				return retry.RetryableError(err)
			}
			return err
		}
		out = text
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return out, nil
}
