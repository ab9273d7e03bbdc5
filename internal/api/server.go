// Package api configures and exposes the debug HTTP server for the gateway:
// health, activation status, Prometheus metrics and pprof endpoints.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gateway/internal/config"
	"gateway/pkg/controller"
	"gateway/pkg/crafter"
	"gateway/pkg/domain"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds configuration for the debug HTTP server.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// statusResponse is the body served by the /status endpoint.
type statusResponse struct {
	Activated bool            `json:"activated"`
	Website   *domain.Website `json:"website,omitempty"`
}

// NewServer wires up and returns a configured *http.Server using the provided
// gateway client and Options. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - /healthz liveness endpoint
// - /status endpoint reporting activation state and the website identity
// - pprof endpoints for profiling
// It also wraps the mux with the CORS and access log middlewares.
func NewServer(client crafter.Client, opts Options) *http.Server {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(statusResponse{
			Activated: client.Activated(),
			Website:   client.Website(),
		})
	})

	// pprof
	mux.Handle("/debug/pprof/", controller.Profiler())

	// cors
	handler := controller.WithCORS(mux)

	// access log
	handler = controller.WithAccessLog(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
