package enhancer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/prompt-architect/internal/config"
	"github.com/joestump/prompt-architect/internal/llm"
)

type fakeCompleter struct {
	calls atomic.Int32
	fn    func(ctx context.Context, call int, req llm.CompletionRequest) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	n := int(f.calls.Add(1))
	return f.fn(ctx, n, req)
}

func fastOpts() DelegatedOptions {
	return DelegatedOptions{
		Provider:     "fake",
		MaxTokens:    64,
		Timeout:      time.Second,
		Retries:      1,
		RetryBackoff: time.Millisecond,
	}
}

func TestDelegated_ReturnsResponseVerbatim(t *testing.T) {
	var got llm.CompletionRequest
	fc := &fakeCompleter{fn: func(_ context.Context, _ int, req llm.CompletionRequest) (string, error) {
		got = req
		return "  A sleek cat on a moonlit roof\n", nil
	}}

	out, err := NewDelegated(fc, fastOpts()).Enhance(context.Background(), "a cat on a roof")
	require.NoError(t, err)
	assert.Equal(t, "  A sleek cat on a moonlit roof\n", out)
	assert.Contains(t, got.User, "A cat on a roof")
	assert.NotEmpty(t, got.System)
	assert.Equal(t, 64, got.MaxTokens)
}

func TestDelegated_EmptySeedSkipsCall(t *testing.T) {
	fc := &fakeCompleter{fn: func(context.Context, int, llm.CompletionRequest) (string, error) {
		return "unused", nil
	}}
	_, err := NewDelegated(fc, fastOpts()).Enhance(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptySeed)
	assert.Zero(t, fc.calls.Load())
}

func TestDelegated_RetriesTransientOnce(t *testing.T) {
	fc := &fakeCompleter{fn: func(_ context.Context, call int, _ llm.CompletionRequest) (string, error) {
		if call == 1 {
			return "", fmt.Errorf("%w: connection reset", llm.ErrUnavailable)
		}
		return "second time lucky", nil
	}}

	out, err := NewDelegated(fc, fastOpts()).Enhance(context.Background(), "a cat")
	require.NoError(t, err)
	assert.Equal(t, "second time lucky", out)
	assert.EqualValues(t, 2, fc.calls.Load())
}

func TestDelegated_GivesUpAfterRetries(t *testing.T) {
	fc := &fakeCompleter{fn: func(context.Context, int, llm.CompletionRequest) (string, error) {
		return "", fmt.Errorf("%w: dial tcp: connection refused", llm.ErrUnavailable)
	}}

	_, err := NewDelegated(fc, fastOpts()).Enhance(context.Background(), "a cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.EqualValues(t, 2, fc.calls.Load())
}

func TestDelegated_NoRetryOnPermanentFailures(t *testing.T) {
	for _, kind := range []error{llm.ErrAuth, llm.ErrQuota, llm.ErrMalformed, llm.ErrRejected} {
		fc := &fakeCompleter{fn: func(context.Context, int, llm.CompletionRequest) (string, error) {
			return "", fmt.Errorf("%w: nope", kind)
		}}
		_, err := NewDelegated(fc, fastOpts()).Enhance(context.Background(), "a cat")
		assert.ErrorIs(t, err, ErrUpstream)
		assert.ErrorIs(t, err, kind)
		assert.EqualValues(t, 1, fc.calls.Load(), kind.Error())
	}
}

func TestDelegated_PerAttemptTimeout(t *testing.T) {
	fc := &fakeCompleter{fn: func(ctx context.Context, _ int, _ llm.CompletionRequest) (string, error) {
		<-ctx.Done()
		return "", fmt.Errorf("%w: %w", llm.ErrUnavailable, ctx.Err())
	}}
	opts := fastOpts()
	opts.Timeout = 20 * time.Millisecond

	start := time.Now()
	_, err := NewDelegated(fc, opts).Enhance(context.Background(), "a cat")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.EqualValues(t, 2, fc.calls.Load())
}

func TestDelegated_UnreachableCollaborator(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := &config.Config{}
	cfg.Enhancer.Variant = config.VariantDelegated
	cfg.LLM.Provider = "openai"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = url
	cfg.LLM.MaxTokens = 32
	cfg.LLM.Timeout = time.Second
	cfg.LLM.Retries = 1
	cfg.LLM.RetryBackoff = time.Millisecond

	e, err := New(cfg)
	require.NoError(t, err)
	_, err = e.Enhance(context.Background(), "a cat on a roof")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestNew_Variants(t *testing.T) {
	cfg := &config.Config{}
	cfg.Enhancer.Variant = config.VariantTemplate
	cfg.Enhancer.AdjectiveCount = 2
	e, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &Template{}, e)

	cfg.Enhancer.Variant = config.VariantDelegated
	_, err = New(cfg)
	assert.Error(t, err, "missing API key must fail")

	cfg.LLM.Provider = "anthropic"
	cfg.LLM.APIKey = "k"
	e, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &Delegated{}, e)

	cfg.Enhancer.Variant = "other"
	_, err = New(cfg)
	assert.Error(t, err)
}
