package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/joestump/prompt-architect/internal/enhancer"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Enhancer enhancer.Enhancer
	Variant  string
	// Vocabulary is nil when the enhancer does not use local word pools.
	Vocabulary *enhancer.Vocabulary
}

// NewAPIRouter creates a chi sub-router for /api. Every response, errors
// included, is application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	optimize := &optimizeHandler{enhancer: deps.Enhancer, variant: deps.Variant}
	r.Post("/optimize", optimize.Optimize)

	vocab := &vocabularyHandler{variant: deps.Variant, vocab: deps.Vocabulary}
	r.Get("/vocabulary", vocab.Show)

	return r
}
