package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service runs the registered checks.
type Service struct {
	checks map[string]Checker
}

// New creates a Service. Nil checkers are skipped.
func New(checks map[string]Checker) *Service {
	filtered := make(map[string]Checker, len(checks))
	for name, c := range checks {
		if c != nil {
			filtered[name] = c
		}
	}
	return &Service{checks: filtered}
}

// Check runs every check. No checks means Healthy.
func (s *Service) Check(ctx context.Context) Report {
	results := make(map[string]CheckResult, len(s.checks))
	failed := 0
	for name, c := range s.checks {
		if err := c.HealthCheck(ctx); err != nil {
			results[name] = CheckError
			failed++
			continue
		}
		results[name] = CheckOK
	}

	status := Healthy
	switch {
	case failed > 0 && failed == len(results):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: results}
}
