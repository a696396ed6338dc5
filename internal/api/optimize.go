package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/joestump/prompt-architect/internal/enhancer"
	"github.com/joestump/prompt-architect/internal/llm"
	"github.com/joestump/prompt-architect/internal/logging"
	"github.com/joestump/prompt-architect/internal/metrics"
)

const maxBodyBytes = 64 << 10

const (
	msgNoPrompt    = "No prompt provided"
	msgInvalidBody = "invalid request body"
	msgFailed      = "Failed to enhance prompt"
	msgBusy        = "Enhancement service is busy, try again later"
)

// optimizeHandler provides the POST /api/optimize endpoint.
type optimizeHandler struct {
	enhancer enhancer.Enhancer
	variant  string
}

// Optimize turns a seed prompt into an enhanced prompt.
// POST /api/optimize
//
// @Summary      Enhance a seed prompt
// @Description  Embellishes a short idea into a detailed image-generation prompt
// @Tags         Prompts
// @Accept       json
// @Produce      json
// @Param        request  body      OptimizeRequest  true  "Seed prompt"
// @Success      200      {object}  OptimizeResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      405      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Failure      503      {object}  ErrorResponse
// @Router       /optimize [post]
func (h *optimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	outcome := metrics.OutcomeOK
	defer func() {
		metrics.EnhancementsTotal.WithLabelValues(h.variant, outcome).Inc()
		if outcome == metrics.OutcomeOK {
			metrics.EnhancementDuration.WithLabelValues(h.variant).Observe(time.Since(start).Seconds())
		}
	}()

	var req OptimizeRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		outcome = metrics.OutcomeClientError
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, msgNoPrompt)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.SeedPrompt) == "" {
		outcome = metrics.OutcomeClientError
		writeError(w, http.StatusBadRequest, msgNoPrompt)
		return
	}

	text, err := h.enhance(r.Context(), req.SeedPrompt)
	if err != nil {
		logger := logging.FromContext(r.Context())
		switch {
		case errors.Is(err, enhancer.ErrEmptySeed):
			outcome = metrics.OutcomeClientError
			writeError(w, http.StatusBadRequest, msgNoPrompt)
		case errors.Is(err, enhancer.ErrUpstream) && errors.Is(err, llm.ErrQuota):
			outcome = metrics.OutcomeUpstreamError
			logger.Error().Err(err).Str("variant", h.variant).Msg("api: enhancement quota exhausted")
			writeError(w, http.StatusServiceUnavailable, msgBusy)
		case errors.Is(err, enhancer.ErrUpstream):
			outcome = metrics.OutcomeUpstreamError
			logger.Error().Err(err).Str("variant", h.variant).Msg("api: enhancement service error")
			writeError(w, http.StatusBadGateway, msgFailed)
		default:
			outcome = metrics.OutcomeInternalError
			logger.Error().Err(err).Str("variant", h.variant).Msg("api: enhancement error")
			writeError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, OptimizeResponse{EnhancedPrompt: text})
}

// enhance calls the enhancer, converting a panic into an error so a faulty
// enhancer still yields a JSON 500.
func (h *optimizeHandler) enhance(ctx context.Context, seed string) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("enhancer panic: %v", p)
		}
	}()
	return h.enhancer.Enhance(ctx, seed)
}
