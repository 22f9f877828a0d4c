// Package routes assembles the huma API and registers every HTTP route.
package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/greeting-api/internal/http/greeting"
	"github.com/janisto/greeting-api/internal/http/health"
)

const (
	// DocsPath serves the interactive API reference.
	DocsPath = "/api-docs"
	// OpenAPIPath is the prefix of the generated OpenAPI documents.
	OpenAPIPath = "/openapi"
)

// NewAPI builds the huma API on router.
//
// Schema link injection is disabled, so response bodies carry only the fields
// their types declare. Every JSON request and response schema is also
// advertised as CBOR, which huma negotiates through the Accept header.
func NewAPI(router chi.Router, version string) huma.API {
	cfg := huma.DefaultConfig("Greeting API", version)
	cfg.DocsPath = DocsPath
	cfg.OpenAPIPath = OpenAPIPath
	cfg.CreateHooks = nil

	api := humachi.New(router, cfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, mirrorCBOR)
	return api
}

// mirrorCBOR copies application/json content entries to application/cbor.
func mirrorCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp == nil || resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// Register wires the greeting operation and the health probe. The probe
// reports the version recorded in the API's OpenAPI info.
func Register(router chi.Router, api huma.API) {
	router.Get("/health", health.Handler(api.OpenAPI().Info.Version))
	greeting.Register(api)
}
