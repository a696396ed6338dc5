package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/joestump/prompt-architect/internal/build"
)

// HealthHandler reports liveness and the active enhancer variant.
type HealthHandler struct {
	variant string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(variant string) *HealthHandler { return &HealthHandler{variant: variant} }

type healthResponse struct {
	Status  string `json:"status"`
	Variant string `json:"variant"`
	Version string `json:"version"`
}

// Show serves GET /healthz.
func (h *HealthHandler) Show(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Variant: h.variant,
		Version: build.Version,
	})
}
