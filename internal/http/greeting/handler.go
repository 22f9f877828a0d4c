// Package greeting serves the static greeting at the root path.
package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/greeting-api/internal/platform/logging"
)

// Register wires the greeting operation into api.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get the greeting",
		Description: "Returns a static greeting. Query parameters, headers and body are ignored.",
		Tags:        []string{"Greeting"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogDebug(ctx, "greeting served")
	return &Output{Body: Data{Message: Message}}, nil
}
