package health

import "context"

// Checker reports whether a component works.
type Checker interface {
	HealthCheck(ctx context.Context) error
}
