package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureLogger records log lines for assertions
type captureLogger struct {
	lines []string
}

func (c *captureLogger) Printf(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Expected JSON body, got error: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	srv := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/scenes", nil)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Expected JSON body, got error: %v", err)
	}
	if len(body["scenes"]) == 0 {
		t.Error("Expected at least one scene")
	}
}

func TestHandleRenderReturnsPNG(t *testing.T) {
	srv := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/render?scene=default&width=16&height=12&depth=1", nil)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Expected a decodable PNG, got error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("Expected a 16x12 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHandleRenderLogsCompletion(t *testing.T) {
	logger := &captureLogger{}
	srv := NewServerWithLogger(0, logger)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?width=8&height=8&depth=0", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	found := false
	for _, line := range logger.lines {
		if strings.Contains(line, "Rendered") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a render completion log line, got %v", logger.lines)
	}
}

func TestHandleRenderRejectsBadParams(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected int
	}{
		{"unknown scene", "/api/render?scene=nope&width=8&height=8", http.StatusNotFound},
		{"non-numeric width", "/api/render?width=wide", http.StatusBadRequest},
		{"oversize height", "/api/render?height=100000", http.StatusBadRequest},
		{"negative depth", "/api/render?depth=-1", http.StatusBadRequest},
	}

	srv := NewServer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
