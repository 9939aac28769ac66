package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/numconv/internal/metrics"
	chiTransport "github.com/kailas-cloud/numconv/internal/transport/chi"
)

// newRouter assembles the middleware chain and API routes.
// Metrics wrap auth so rejected requests are counted too.
func newRouter(server *chiTransport.Server, apiKeys []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEvent(logger))
	r.Use(metrics.Middleware())
	r.Use(chiTransport.BearerAuthMiddleware(apiKeys))
	return chiTransport.Handler(server, r)
}
