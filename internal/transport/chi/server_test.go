package chi

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/numconv/internal/domain/geo"
	convertuc "github.com/kailas-cloud/numconv/internal/usecase/convert"
	healthuc "github.com/kailas-cloud/numconv/internal/usecase/health"
)

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report { return m.report }

// brokenConverter fails every call with an error outside the domain.
type brokenConverter struct{ *convertuc.Service }

var errBackend = errors.New("backend exploded")

func (brokenConverter) Decode(context.Context, string) (int64, error) { return 0, errBackend }

func newTestRouter(t *testing.T, conv Converter, health HealthChecker) http.Handler {
	t.Helper()
	if conv == nil {
		conv = convertuc.New(nil)
	}
	if health == nil {
		health = &mockHealth{report: healthuc.Report{Status: healthuc.Healthy}}
	}
	s := NewServer(conv, health, zap.NewNop())
	return Handler(s, chi.NewRouter())
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func TestDecode_OK(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	tests := []struct {
		bits string
		want int64
	}{
		{"0101", 5},
		{"1101", -3},
		{"1", -1},
		{"10000000", -128},
	}
	for _, tt := range tests {
		rr := doGet(t, h, "/v1/twos-complement/decode?bits="+tt.bits)
		if rr.Code != http.StatusOK {
			t.Fatalf("bits=%s: status %d, body %s", tt.bits, rr.Code, rr.Body)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		resp := decodeBody[DecodeResponse](t, rr)
		if resp.Value != tt.want || resp.Bits != tt.bits {
			t.Errorf("bits=%s: got %+v, want value %d", tt.bits, resp, tt.want)
		}
	}
}

func TestEncode_OK(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	rr := doGet(t, h, "/v1/twos-complement/encode?value=-3&size=4")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body)
	}
	resp := decodeBody[EncodeResponse](t, rr)
	if resp.Bits != "1101" || resp.Value != -3 || resp.Size != 4 {
		t.Errorf("got %+v", resp)
	}
}

func TestRange_OK(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	rr := doGet(t, h, "/v1/twos-complement/range?size=8")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body)
	}
	resp := decodeBody[RangeResponse](t, rr)
	if resp.Min != -128 || resp.Max != 127 || resp.Size != 8 {
		t.Errorf("got %+v", resp)
	}
}

func TestToCartesian_OK(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	rr := doGet(t, h, "/v1/geodetic/cartesian?lat=0&lon=0")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body)
	}
	resp := decodeBody[CartesianResponse](t, rr)
	if resp.X != geo.WGS84.A || resp.Y != 0 || resp.Z != 0 {
		t.Errorf("got %+v, want (%v, 0, 0)", resp, geo.WGS84.A)
	}

	rr = doGet(t, h, "/v1/geodetic/cartesian?lat=0&lon=0&height=100")
	resp = decodeBody[CartesianResponse](t, rr)
	if resp.X != geo.WGS84.A+100 {
		t.Errorf("with height: x = %v, want %v", resp.X, geo.WGS84.A+100)
	}
}

func TestFromCartesian_OK(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	rr := doGet(t, h, "/v1/geodetic/inverse?x=6378137&y=0&z=0")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body)
	}
	resp := decodeBody[GeodeticResponse](t, rr)
	if resp.Lat != 0 || resp.Lon != 0 || resp.Height > 1e-6 || resp.Height < -1e-6 {
		t.Errorf("got %+v", resp)
	}
}

func TestZone_Policies(t *testing.T) {
	h := newTestRouter(t, nil, nil)
	standard := newTestRouter(t, convertuc.New(nil).WithZonePolicy(geo.Standard), nil)

	tests := []struct {
		name   string
		h      http.Handler
		target string
		want   string
		policy string
	}{
		{"default banded", h, "/v1/geodetic/zone?lat=60.39&lon=5.32", "31N", "banded"},
		{"explicit standard", h, "/v1/geodetic/zone?lat=60.39&lon=5.32&policy=standard", "32N", "standard"},
		{"configured standard", standard, "/v1/geodetic/zone?lat=80&lon=7", "31N", "standard"},
		{"override to banded", standard, "/v1/geodetic/zone?lat=80&lon=7&policy=banded", "32N", "banded"},
		{"southern", h, "/v1/geodetic/zone?lat=-33.87&lon=151.21", "56S", "banded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGet(t, tt.h, tt.target)
			if rr.Code != http.StatusOK {
				t.Fatalf("status %d, body %s", rr.Code, rr.Body)
			}
			resp := decodeBody[ZoneResponse](t, rr)
			if resp.Designator != tt.want {
				t.Errorf("designator = %s, want %s", resp.Designator, tt.want)
			}
			if resp.Policy != tt.policy {
				t.Errorf("policy = %s, want %s", resp.Policy, tt.policy)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	tests := []struct {
		name   string
		target string
		status int
		code   ErrorCode
	}{
		{"decode missing bits", "/v1/twos-complement/decode", http.StatusBadRequest, ErrorCodeBadRequest},
		{"decode bad char", "/v1/twos-complement/decode?bits=0121", http.StatusBadRequest, ErrorCodeInvalidFormat},
		{"decode too wide", "/v1/twos-complement/decode?bits=" + ones(65), http.StatusUnprocessableEntity, ErrorCodeOverflow},
		{"encode missing size", "/v1/twos-complement/encode?value=1", http.StatusBadRequest, ErrorCodeBadRequest},
		{"encode non-numeric value", "/v1/twos-complement/encode?value=abc&size=8", http.StatusBadRequest, ErrorCodeBadRequest},
		{"encode out of range", "/v1/twos-complement/encode?value=128&size=8", http.StatusUnprocessableEntity, ErrorCodeOutOfRange},
		{"encode zero size", "/v1/twos-complement/encode?value=0&size=0", http.StatusBadRequest, ErrorCodeInvalidSize},
		{"encode size too wide", "/v1/twos-complement/encode?value=0&size=65", http.StatusUnprocessableEntity, ErrorCodeOverflow},
		{"range negative size", "/v1/twos-complement/range?size=-1", http.StatusBadRequest, ErrorCodeInvalidSize},
		{"cartesian lat out of bounds", "/v1/geodetic/cartesian?lat=91&lon=0", http.StatusUnprocessableEntity, ErrorCodeInvalidCoordinate},
		{"cartesian bad height", "/v1/geodetic/cartesian?lat=0&lon=0&height=high", http.StatusBadRequest, ErrorCodeBadRequest},
		{"inverse overflowing height", "/v1/geodetic/inverse?x=1.7e308&y=1.7e308&z=0", http.StatusUnprocessableEntity, ErrorCodeInvalidCoordinate},
		{"inverse missing z", "/v1/geodetic/inverse?x=1&y=2", http.StatusBadRequest, ErrorCodeBadRequest},
		{"zone lon out of bounds", "/v1/geodetic/zone?lat=0&lon=181", http.StatusUnprocessableEntity, ErrorCodeInvalidCoordinate},
		{"zone unknown policy", "/v1/geodetic/zone?lat=0&lon=0&policy=mgrs", http.StatusBadRequest, ErrorCodeInvalidPolicy},
		{"unknown route", "/v1/nope", http.StatusNotFound, ErrorCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGet(t, h, tt.target)
			if rr.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.status, rr.Body)
			}
			resp := decodeBody[ErrorResponse](t, rr)
			if resp.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
			if resp.Message == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/twos-complement/decode?bits=1", http.NoBody))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rr); resp.Code != ErrorCodeMethodNotAllowed {
		t.Errorf("code = %s", resp.Code)
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	h := newTestRouter(t, brokenConverter{convertuc.New(nil)}, nil)

	rr := doGet(t, h, "/v1/twos-complement/decode?bits=1")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	resp := decodeBody[ErrorResponse](t, rr)
	if resp.Code != ErrorCodeInternalError || resp.Message != "internal error" {
		t.Errorf("got %+v", resp)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name   string
		report healthuc.Report
		status int
	}{
		{"healthy", healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"twos_complement": healthuc.CheckOK},
		}, http.StatusOK},
		{"degraded", healthuc.Report{
			Status: healthuc.Degraded,
			Checks: map[string]healthuc.CheckResult{
				"twos_complement": healthuc.CheckOK,
				"geodetic":        healthuc.CheckError,
			},
		}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, nil, &mockHealth{report: tt.report})

			rr := doGet(t, h, "/health")
			if rr.Code != tt.status {
				t.Fatalf("status = %d, want %d", rr.Code, tt.status)
			}
			resp := decodeBody[HealthResponse](t, rr)
			if resp.Status != string(tt.report.Status) {
				t.Errorf("status = %s, want %s", resp.Status, tt.report.Status)
			}
			if len(resp.Checks) != len(tt.report.Checks) {
				t.Errorf("checks = %v", resp.Checks)
			}
			if resp.Version == "" {
				t.Error("empty version")
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, nil, nil)

	rr := doGet(t, h, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, CartesianResponse{X: math.Inf(1)})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	resp := decodeBody[ErrorResponse](t, rr)
	if resp.Code != ErrorCodeInternalError {
		t.Errorf("code = %s, want internal_error", resp.Code)
	}
}

func ones(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '1'
	}
	return string(b)
}
