// Package gateway exposes the prediction client to the wellness app over
// HTTP: the predict endpoint, a health surface, and Prometheus metrics.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pulseai/gateway/internal/prediction"
)

// Server is the gateway's HTTP server.
type Server struct {
	client *prediction.Client
	server *http.Server
}

// NewServer builds the router and wraps it in an http.Server.
func NewServer(client *prediction.Client, port int) *Server {
	s := &Server{client: client}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)

	r.Post("/api/v1/predict", s.handlePredict)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
