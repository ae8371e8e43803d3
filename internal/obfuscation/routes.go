package obfuscation

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/obfuscation/core/health"
	"github.com/dmitrymomot/obfuscation/core/router"
)

// RegisterRoutes mounts the API, banner and health endpoints on r.
func RegisterRoutes(r router.Router[*router.Context], h *Handlers, service string, log *slog.Logger) {
	r.Get("/{$}", h.Index)

	r.Route("/api/obfuscation", func(api router.Router[*router.Context]) {
		api.Get("/encrypt/{id}", h.Encrypt)
		api.Get("/decrypt/{value}", h.Decrypt)
	})

	r.Get("/health", health.Status[*router.Context](service, time.Now))
	r.Get("/health/live", health.Liveness[*router.Context])
	r.Get("/health/ready", health.Readiness[*router.Context](log,
		health.Check{Name: "codec", Fn: SelfCheck(h.codec)},
	))
}
