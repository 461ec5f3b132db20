package main

import (
	"fmt"

	"github.com/devansharora/tunedeck/pkg/models"
)

// ScanRequest is the request body for POST /api/library/scan
type ScanRequest struct {
	// FolderPath is the root folder to scan (required)
	FolderPath string `json:"folder_path" binding:"required"`
}

// Validate checks if the request is valid
func (r *ScanRequest) Validate() error {
	if r.FolderPath == "" {
		return fmt.Errorf("folder_path is required")
	}
	return nil
}

// ScanResponse is the response for a successful library scan
type ScanResponse struct {
	Files []models.MusicFile `json:"files"`
	Count int                `json:"count"`
}

// ExistsRequest is the request body for POST /api/files/exists
type ExistsRequest struct {
	// FilePath is the path to check (required)
	FilePath string `json:"file_path" binding:"required"`
}

// Validate checks if the request is valid
func (r *ExistsRequest) Validate() error {
	if r.FilePath == "" {
		return fmt.Errorf("file_path is required")
	}
	return nil
}

// ExistsResponse is the response for an existence check
type ExistsResponse struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
