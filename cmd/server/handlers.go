package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/devansharora/tunedeck/internal/library"
	"github.com/devansharora/tunedeck/pkg/logger"
	"github.com/devansharora/tunedeck/pkg/tunedeck"
)

// Server encapsulates the HTTP bridge and its dependencies
type Server struct {
	service tunedeck.Service
	config  *ServerConfig
	log     tunedeck.Logger
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// NewServer creates a new server instance
func NewServer(service tunedeck.Service, config *ServerConfig) *Server {
	return &Server{
		service: service,
		config:  config,
		log:     logger.GetLogger(),
	}
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("Failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response
func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "TuneDeck Backend API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":     "GET /health",
			"scanFolder": "POST /api/library/scan",
			"fileExists": "GET|POST /api/files/exists",
		},
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleScan handles POST /api/library/scan
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Use POST")
		return
	}

	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Errorf("Failed to decode scan request: %v", err)
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	files, err := s.service.ScanMusicFolder(req.FolderPath)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrFolderNotFound):
			s.respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, library.ErrNotADirectory):
			s.respondError(w, http.StatusBadRequest, err.Error())
		default:
			s.log.Errorf("Scan failed: %v", err)
			s.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.respondJSON(w, http.StatusOK, ScanResponse{
		Files: files,
		Count: len(files),
	})
}

// handleExists handles GET and POST /api/files/exists
func (s *Server) handleExists(w http.ResponseWriter, r *http.Request) {
	var path string

	switch r.Method {
	case http.MethodGet:
		path = r.URL.Query().Get("path")
		if path == "" {
			s.respondError(w, http.StatusBadRequest, "path query parameter is required")
			return
		}
	case http.MethodPost:
		var req ExistsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.log.Errorf("Failed to decode exists request: %v", err)
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		path = req.FilePath
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Use GET or POST")
		return
	}

	s.respondJSON(w, http.StatusOK, ExistsResponse{
		Path:   path,
		Exists: s.service.FileExists(path),
	})
}
