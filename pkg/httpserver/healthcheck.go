package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/flash/handler"
	"github.com/dmitrymomot/flash/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// HealthCheck answers liveness and readiness probes. Without checks it
// returns 200 "ALIVE". With checks it returns 200 "READY" when all pass
// and 503 "NOT_READY" otherwise.
func HealthCheck(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return handler.Wrap(handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
		if len(checks) == 0 {
			return handler.Text("ALIVE")
		}
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("httpserver"),
					logger.Error(err),
				)
				return handler.TextWithStatus(http.StatusServiceUnavailable, "NOT_READY")
			}
		}
		return handler.Text("READY")
	}))
}
