// Package server exposes the raytracer over HTTP: /api/render returns a
// finished PNG for the requested scene and parameters.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/renderer"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server logging to the standard logger
func NewServer(port int) *Server {
	return &Server{port: port, logger: log.Default()}
}

// NewServerWithLogger creates a web server with a custom logger
func NewServerWithLogger(port int, logger core.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// RenderRequest holds the parsed query parameters of a render request
type RenderRequest struct {
	Scene  string // Scene name (e.g., "default")
	Width  int    // Image width
	Height int    // Image height
	Depth  int    // Maximum recursion depth
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.Routes()
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Routes builds the server's HTTP handler
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available demo scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()})
}

// handleRender renders the requested scene and returns the finished PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	selectedScene, ok := scene.Build(req.Scene, req.Width, req.Height)
	if !ok {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusNotFound)
		return
	}

	clearColor := core.NewVec3(0.2, 0.2, 0.3)
	raytracer := renderer.NewRaytracer(clearColor, req.Depth)
	fb := renderer.NewFramebuffer(req.Width, req.Height, clearColor)

	startTime := time.Now()
	renderer.NewWorkerPool(raytracer, 0).Render(fb, selectedScene)
	s.logger.Printf("Rendered %q at %dx%d depth %d in %v",
		req.Scene, req.Width, req.Height, req.Depth, time.Since(startTime))

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, fb.ToImage()); err != nil {
		s.logger.Printf("Error encoding PNG response: %v", err)
	}
}

// parseRenderRequest extracts render parameters from query string with defaults
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()

	req := &RenderRequest{
		Scene:  "default",
		Width:  800,
		Height: 450,
		Depth:  3,
	}

	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	var err error
	if req.Width, err = parseIntParam(query.Get("width"), req.Width, 1, 4096); err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	if req.Height, err = parseIntParam(query.Get("height"), req.Height, 1, 4096); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if req.Depth, err = parseIntParam(query.Get("depth"), req.Depth, 0, 16); err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}

	return req, nil
}

func parseIntParam(raw string, def, min, max int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", raw)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("value %d outside [%d, %d]", v, min, max)
	}
	return v, nil
}
