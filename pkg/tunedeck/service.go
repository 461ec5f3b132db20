// Package tunedeck is the public facade of the TuneDeck backend: it scans
// music folders and answers file existence checks for front-end bridges.
package tunedeck

import (
	"github.com/devansharora/tunedeck/internal/library"
	"github.com/devansharora/tunedeck/pkg/logger"
	"github.com/devansharora/tunedeck/pkg/models"
)

// deckService is the default implementation of the Service interface.
type deckService struct {
	scanner *library.Scanner
	log     Logger
	config  *Config
}

func NewService(opts ...Option) Service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Set default logger if none provided
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	scanner := library.NewScanner(library.ScanConfig{
		Extensions:     cfg.Extensions,
		FollowSymlinks: cfg.FollowSymlinks,
		Logger:         cfg.Logger,
	})

	return &deckService{
		scanner: scanner,
		log:     cfg.Logger,
		config:  cfg,
	}
}

// ScanMusicFolder walks folderPath and returns every recognized audio file.
// The call is synchronous; a caller wanting a timeout runs it on its own
// goroutine and abandons it.
func (s *deckService) ScanMusicFolder(folderPath string) ([]models.MusicFile, error) {
	s.log.Infof("Scanning music folder: %s", folderPath)

	files, err := s.scanner.Scan(folderPath)
	if err != nil {
		s.log.Warnf("Scan failed: %v", err)
		return nil, err
	}

	s.log.Infof("Found %d music files under %s", len(files), folderPath)
	return files, nil
}

// FileExists reports whether a filesystem entry is present at filePath.
func (s *deckService) FileExists(filePath string) bool {
	return library.Exists(filePath)
}

// SupportedExtensions returns the built-in audio extension allow-list.
func SupportedExtensions() []string {
	return library.DefaultExtensions()
}
