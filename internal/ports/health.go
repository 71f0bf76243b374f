package ports

import "context"

// HealthChecker reports on one dependency of the dashboard, such as the
// merchant API breaker or the view registry.
type HealthChecker interface {
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns each result by name; a nil
	// error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
