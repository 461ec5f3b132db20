package tunedeck

import "github.com/devansharora/tunedeck/pkg/models"

// Service is the backend surface exposed to front-end bridges.
type Service interface {
	// ScanMusicFolder recursively enumerates audio files under folderPath.
	ScanMusicFolder(folderPath string) ([]models.MusicFile, error)

	// FileExists reports whether a filesystem entry is present at filePath.
	FileExists(filePath string) bool
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
