package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/dmitrymomot/formulate/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler answers liveness when checks is empty and readiness
// otherwise. Any failing check turns the response into 503.
func HealthHandler(log *slog.Logger, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	names := slices.Sorted(maps.Keys(checks))

	return func(w http.ResponseWriter, r *http.Request) {
		report := healthReport{Status: "ok"}
		status := http.StatusOK

		if len(names) > 0 {
			report.Checks = make(map[string]string, len(names))
		}
		for _, name := range names {
			if err := checks[name](r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed",
					slog.String("check", name),
					logger.Error(err),
				)
				report.Checks[name] = err.Error()
				report.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			report.Checks[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}
