package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/numconv/internal/domain"
	"github.com/kailas-cloud/numconv/internal/domain/geo"
	"github.com/kailas-cloud/numconv/internal/logger"
	healthuc "github.com/kailas-cloud/numconv/internal/usecase/health"
	"github.com/kailas-cloud/numconv/internal/version"
)

// Converter is the conversion use case consumed by the HTTP handlers.
type Converter interface {
	Decode(ctx context.Context, bits string) (int64, error)
	Encode(ctx context.Context, value int64, size int) (string, error)
	Range(ctx context.Context, size int) (int64, int64, error)
	ToCartesian(ctx context.Context, p geo.GeodeticPoint) (geo.CartesianPoint, error)
	FromCartesian(ctx context.Context, c geo.CartesianPoint) (geo.GeodeticPoint, error)
	Zone(ctx context.Context, lat, lon float64, policy geo.ZonePolicy) (geo.Zone, error)
	ZonePolicy() geo.ZonePolicy
}

// HealthChecker reports aggregated health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the conversion API.
type Server struct {
	convert       Converter
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(convert Converter, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		convert: convert,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidFormat, http.StatusBadRequest, ErrorCodeInvalidFormat),
		sentinelHandler(domain.ErrInvalidSize, http.StatusBadRequest, ErrorCodeInvalidSize),
		sentinelHandler(domain.ErrInvalidPolicy, http.StatusBadRequest, ErrorCodeInvalidPolicy),
		sentinelHandler(domain.ErrOutOfRange, http.StatusUnprocessableEntity, ErrorCodeOutOfRange),
		sentinelHandler(domain.ErrInvalidCoordinate, http.StatusUnprocessableEntity, ErrorCodeInvalidCoordinate),
		sentinelHandler(domain.ErrOverflow, http.StatusUnprocessableEntity, ErrorCodeOverflow),
	}
	return s
}

// Decode handles GET /v1/twos-complement/decode?bits=.
func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	var bits string
	if !s.bindQuery(w, r, "bits", true, &bits) {
		return
	}

	v, err := s.convert.Decode(r.Context(), bits)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DecodeResponse{Bits: bits, Value: v})
}

// Encode handles GET /v1/twos-complement/encode?value=&size=.
func (s *Server) Encode(w http.ResponseWriter, r *http.Request) {
	var (
		value int64
		size  int
	)
	if !s.bindQuery(w, r, "value", true, &value) || !s.bindQuery(w, r, "size", true, &size) {
		return
	}

	bits, err := s.convert.Encode(r.Context(), value, size)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, EncodeResponse{Value: value, Size: size, Bits: bits})
}

// Range handles GET /v1/twos-complement/range?size=.
func (s *Server) Range(w http.ResponseWriter, r *http.Request) {
	var size int
	if !s.bindQuery(w, r, "size", true, &size) {
		return
	}

	lo, hi, err := s.convert.Range(r.Context(), size)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RangeResponse{Size: size, Min: lo, Max: hi})
}

// ToCartesian handles GET /v1/geodetic/cartesian?lat=&lon=&height=.
// height defaults to 0.
func (s *Server) ToCartesian(w http.ResponseWriter, r *http.Request) {
	var p geo.GeodeticPoint
	if !s.bindQuery(w, r, "lat", true, &p.Lat) ||
		!s.bindQuery(w, r, "lon", true, &p.Lon) ||
		!s.bindQuery(w, r, "height", false, &p.Height) {
		return
	}

	c, err := s.convert.ToCartesian(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CartesianResponse{X: c.X, Y: c.Y, Z: c.Z})
}

// FromCartesian handles GET /v1/geodetic/inverse?x=&y=&z=.
func (s *Server) FromCartesian(w http.ResponseWriter, r *http.Request) {
	var c geo.CartesianPoint
	if !s.bindQuery(w, r, "x", true, &c.X) ||
		!s.bindQuery(w, r, "y", true, &c.Y) ||
		!s.bindQuery(w, r, "z", true, &c.Z) {
		return
	}

	p, err := s.convert.FromCartesian(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GeodeticResponse{Lat: p.Lat, Lon: p.Lon, Height: p.Height})
}

// Zone handles GET /v1/geodetic/zone?lat=&lon=&policy=.
func (s *Server) Zone(w http.ResponseWriter, r *http.Request) {
	var (
		lat, lon float64
		policy   string
	)
	if !s.bindQuery(w, r, "lat", true, &lat) ||
		!s.bindQuery(w, r, "lon", true, &lon) ||
		!s.bindQuery(w, r, "policy", false, &policy) {
		return
	}

	p := geo.ZonePolicy(policy)
	if p == "" {
		p = s.convert.ZonePolicy()
	}

	z, err := s.convert.Zone(r.Context(), lat, lon, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ZoneResponse{
		Number:     z.Number,
		Hemisphere: string(z.Hemisphere),
		Designator: z.String(),
		Policy:     string(p),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Version: version.Version,
		Checks:  checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// NotFound renders unknown routes as a JSON error.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, ErrorCodeNotFound, "no route for "+r.URL.Path)
}

// MethodNotAllowed renders unsupported methods as a JSON error.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, r.Method+" not allowed")
}

// bindQuery binds a form-style query parameter into dest. On failure it
// writes a bad_request response and returns false.
func (s *Server) bindQuery(w http.ResponseWriter, r *http.Request, name string, required bool, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		logger.FromContext(r.Context()).Debug("bad query parameter",
			zap.String("param", name), zap.Error(err))
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid query parameter "+name+": "+err.Error())
		return false
	}
	return true
}

// writeJSON marshals v before writing headers. An unencodable value is
// reported as internal_error.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{
			Code:    ErrorCodeInternalError,
			Message: "failed to encode response",
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler creates an errorHandler that matches a sentinel error via errors.Is.
// Domain error text is built from request input only, so it is returned as is.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	logger.FromContext(r.Context()).Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
