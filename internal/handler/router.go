package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/prompt-architect/docs/swagger"
	"github.com/joestump/prompt-architect/internal/api"
	"github.com/joestump/prompt-architect/internal/enhancer"
	"github.com/joestump/prompt-architect/internal/logging"
	"github.com/joestump/prompt-architect/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Enhancer   enhancer.Enhancer
	Variant    string
	Vocabulary *enhancer.Vocabulary
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(logging.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// app.js and app.css directly, not static/app.js paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	index := NewIndexHandler(staticSub)
	r.Get("/", index.Show)

	health := NewHealthHandler(deps.Variant)
	r.Get("/healthz", health.Show)

	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI must be registered before the /api mount.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	r.Mount("/api", api.NewAPIRouter(api.Deps{
		Enhancer:   deps.Enhancer,
		Variant:    deps.Variant,
		Vocabulary: deps.Vocabulary,
	}))

	return r
}
