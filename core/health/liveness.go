package health

import (
	"time"

	"github.com/dmitrymomot/obfuscation/core/handler"
	"github.com/dmitrymomot/obfuscation/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// StatusReport is the body rendered by Status.
type StatusReport struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// Status returns a handler reporting the service as healthy with the current
// UTC time from now.
func Status[C handler.Context](service string, now func() time.Time) handler.HandlerFunc[C] {
	if now == nil {
		now = time.Now
	}
	return func(C) handler.Response {
		return response.JSON(StatusReport{
			Status:    "healthy",
			Service:   service,
			Timestamp: now().UTC(),
		})
	}
}
