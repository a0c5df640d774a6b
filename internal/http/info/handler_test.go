package info

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("InfoTest", "test"))
	Register(api)
	return router
}

func TestGetInfo(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body InfoData
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.App != "DevSecOps Demo Application" {
		t.Errorf("unexpected app: %s", body.App)
	}
	if body.Description != "Sample app for container vulnerability scanning" {
		t.Errorf("unexpected description: %s", body.Description)
	}
	if body.Security != "Scanned with Trivy" {
		t.Errorf("unexpected security: %s", body.Security)
	}
	if body.Pipeline != "GitHub Actions" {
		t.Errorf("unexpected pipeline: %s", body.Pipeline)
	}
}
