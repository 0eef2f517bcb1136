// Command fakeapi serves the in-process department API stand-in with the demo
// accounts, for running the console without the real backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jrsteele09/dept-console/api/fakeapi"
	"github.com/jrsteele09/dept-console/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fake, err := fakeapi.New(
		[]byte(config.GetEnv("FAKE_API_SECRET", "dev-secret")),
		config.GetEnvDuration("FAKE_API_TOKEN_EXPIRY", time.Hour),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create fake api")
	}
	if err := fake.SeedDemo(); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/", fake)

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("FAKE_API_PORT", "5000"),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("username", fakeapi.DemoUsername).Msg("Fake api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Fake api stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Msg("Shutdown failed")
	}
}
