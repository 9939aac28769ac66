package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler mounts the API routes of s on r and returns r.
func Handler(s *Server, r chi.Router) http.Handler {
	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.MethodNotAllowed)

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/twos-complement", func(r chi.Router) {
			r.Get("/decode", s.Decode)
			r.Get("/encode", s.Encode)
			r.Get("/range", s.Range)
		})
		r.Route("/geodetic", func(r chi.Router) {
			r.Get("/cartesian", s.ToCartesian)
			r.Get("/inverse", s.FromCartesian)
			r.Get("/zone", s.Zone)
		})
	})

	return r
}
