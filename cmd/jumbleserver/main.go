// Command jumbleserver answers GET /solve?letters=...&unique=1 with the
// words found, one per line.
//
//	jumbleserver -dictionary words.txt [-training a.txt,b.txt] [-listen :8180]
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/jumble_solver/config"
	"github.com/domino14/jumble_solver/internal/jumbleserver"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
	// DefaultMaxLetters keeps a single request from tying up the server.
	DefaultMaxLetters = 20
)

func main() {
	cfg := &config.Config{}
	// The server logs requests at info level unless told otherwise.
	args := append([]string{"-log-level", "info"}, os.Args[1:]...)
	if err := cfg.Load(args); err != nil {
		os.Exit(2)
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if cfg.MaxLetters <= 0 {
		cfg.MaxLetters = DefaultMaxLetters
	}

	jumbleServer, err := jumbleserver.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	mux := http.NewServeMux()
	mux.Handle("/solve", plainTextHandler(jumbleServer))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: middleware(log.Logger).Then(mux),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}

func middleware(logger zerolog.Logger) alice.Chain {
	return alice.New(
		hlog.NewHandler(logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
		hlog.RemoteAddrHandler("ip"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
	)
}
