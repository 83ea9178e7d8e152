package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgerr "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/rl1809/cafeteria/internal/adapter/handler"
)

func newMux(stock handler.StockReader, registry *prometheus.Registry) *http.ServeMux {
	httpHandler := handler.NewHTTPHandler(stock)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/stock", httpHandler.Stock)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}

// serve blocks until SIGINT/SIGTERM or ctx is done, then shuts down.
func serve(ctx context.Context, addr string, stock handler.StockReader, registry *prometheus.Registry) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           newMux(stock, registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return pkgerr.Wrap(err, "http server")
	case <-quit:
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return pkgerr.Wrap(err, "shutdown http server")
	}
	log.Info().Msg("HTTP server stopped")
	return nil
}
