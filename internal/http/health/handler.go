// Package health exposes the liveness probe. It is a plain net/http handler so
// it stays outside the OpenAPI document.
package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	applog "github.com/janisto/greeting-api/internal/platform/logging"
)

// StatusHealthy is reported while the process can serve requests.
const StatusHealthy = "healthy"

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Handler returns a handler that reports the process as healthy along with
// the running build version.
func Handler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(Response{Status: StatusHealthy, Version: version}); err != nil {
			applog.LogWarn(r.Context(), "health response write failed", zap.Error(err))
		}
	}
}
