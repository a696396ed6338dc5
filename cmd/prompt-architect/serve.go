package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/prompt-architect/internal/build"
	"github.com/joestump/prompt-architect/internal/config"
	"github.com/joestump/prompt-architect/internal/enhancer"
	"github.com/joestump/prompt-architect/internal/handler"
	"github.com/joestump/prompt-architect/internal/logging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level, cfg.Log.Format)

			e, err := enhancer.New(cfg)
			if err != nil {
				return err
			}

			var vocab *enhancer.Vocabulary
			if t, ok := e.(*enhancer.Template); ok {
				vocab = t.Vocabulary()
			}

			router := handler.NewRouter(handler.Deps{
				Enhancer:   e,
				Variant:    cfg.Enhancer.Variant,
				Vocabulary: vocab,
			})

			srv := &http.Server{
				Addr:         cfg.HTTP.Addr,
				Handler:      router,
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().
					Str("addr", cfg.HTTP.Addr).
					Str("variant", cfg.Enhancer.Variant).
					Str("version", build.Version).
					Msg("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
