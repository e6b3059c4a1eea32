package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"TASK_MANAGER_API/internal/dto"
	"TASK_MANAGER_API/internal/handlers"
)

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		path       string
		wantStatus string
	}{
		{"/healthz", "ok"},
		{"/livez", "alive"},
		{"/readyz", "ready"},
	}
	for _, tt := range tests {
		w := env.do(t, http.MethodGet, tt.path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: got status %d", tt.path, w.Code)
		}
		var resp dto.HealthResponse
		decode(t, w, &resp)
		if resp.Status != tt.wantStatus {
			t.Errorf("%s: status = %q, want %q", tt.path, resp.Status, tt.wantStatus)
		}
	}
}

func TestReadinessDegradedWhenDBDown(t *testing.T) {
	h := handlers.NewHealthHandler(fakePinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	h.ReadinessCheck(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want 503", w.Code)
	}
}

func TestIndexRoute(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("index: got status %d", w.Code)
	}
	var resp dto.IndexResponse
	decode(t, w, &resp)
	if resp.Service != "Task Manager API" {
		t.Errorf("service = %q", resp.Service)
	}
	if resp.Docs == "" || resp.Version == "" {
		t.Errorf("index response incomplete: %+v", resp)
	}
}
