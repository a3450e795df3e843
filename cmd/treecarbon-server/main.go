package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/treemark/treecarbon/internal/api"
	"github.com/treemark/treecarbon/internal/carbon"
	"github.com/treemark/treecarbon/internal/species"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "treecarbon-server: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(config.LogLevel)

	catalog, err := species.NewCatalog(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load species catalog")
	}
	logger.Info().
		Int("species_count", catalog.Count()).
		Strs("species", catalog.IDs()).
		Msg("Species catalog loaded")

	server := api.NewServer(carbon.NewEstimator(catalog), logger)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", jsonTimeoutHandler(server.Handler(), config.RequestTimeout))

	httpServer := &http.Server{
		Addr:              config.Listen,
		Handler:           mux,
		ReadHeaderTimeout: config.RequestTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownGrace)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().Str("addr", config.Listen).Msg("Starting estimate API server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	<-shutdownDone
}

// jsonTimeoutHandler bounds request handling at d. The Content-Type is set
// up front so the timeout body stays on the JSON contract; TimeoutHandler
// alone would let content sniffing label it text/html. Inner handlers
// overwrite the header for their own responses.
func jsonTimeoutHandler(h http.Handler, d time.Duration) http.Handler {
	inner := http.TimeoutHandler(h, d, `{"success":false,"error":"request timed out"}`)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		inner.ServeHTTP(w, r)
	})
}

// newLogger builds the process logger at the configured level.
// Unrecognized levels fall back to info.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
