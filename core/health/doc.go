// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running, no dependency checks
//   - Readiness: every registered check passes
//   - Status: JSON summary with service name and timestamp
//
// Usage:
//
//	r.Get("/health", health.Status[*router.Context]("obfuscation", time.Now))
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log,
//		health.Check{Name: "codec", Fn: selfCheck},
//	))
//
// Checks follow the func(context.Context) error signature and run
// concurrently; the first failure cancels the rest.
package health
