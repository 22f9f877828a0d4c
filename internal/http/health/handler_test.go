package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	resp := httptest.NewRecorder()
	Handler("1.2.3")(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}
	if cc := resp.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("expected Cache-Control no-store, got %s", cc)
	}

	var h Response
	if err := json.Unmarshal(resp.Body.Bytes(), &h); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if h.Status != StatusHealthy {
		t.Fatalf("expected status %q, got %q", StatusHealthy, h.Status)
	}
	if h.Version != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %q", h.Version)
	}
}

func TestHealthHandlerOmitsEmptyVersion(t *testing.T) {
	resp := httptest.NewRecorder()
	Handler("")(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := body["version"]; ok {
		t.Fatalf("expected version to be omitted, got %v", body)
	}
}
