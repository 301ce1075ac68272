package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/df07/go-reference-pathtracer/pkg/scene"
)

// Server exposes preview rendering over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// Start registers the routes and serves until the listener fails
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRender)
	mux.HandleFunc("/scenes", s.handleScenes)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("serving on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleScenes lists the available scene names as JSON
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scene.Names()); err != nil {
		log.Printf("encoding scene list: %v", err)
	}
}
