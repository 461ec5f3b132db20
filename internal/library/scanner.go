// Package library discovers audio files on the local filesystem.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/devansharora/tunedeck/pkg/models"
)

// Fatal scan failures. Everything else encountered mid-walk is skipped.
var (
	ErrFolderNotFound = errors.New("folder does not exist")
	ErrNotADirectory  = errors.New("path is not a directory")
)

// Logger is the subset of logging used by the scanner.
type Logger interface {
	Debugf(format string, args ...any)
}

// ScanConfig controls a Scanner.
type ScanConfig struct {
	// Extensions overrides the built-in allow-list when non-empty. Entries
	// are matched case-insensitively and may carry a leading dot.
	Extensions []string

	// FollowSymlinks makes the walk descend into symlinked directories.
	FollowSymlinks bool

	Logger Logger
}

// Scanner walks directory trees and collects recognized audio files.
type Scanner struct {
	extensions     map[string]struct{}
	followSymlinks bool
	log            Logger
}

// NewScanner builds a Scanner from cfg. A nil Logger disables scanner logging.
func NewScanner(cfg ScanConfig) *Scanner {
	exts := audioExtensions
	if len(cfg.Extensions) > 0 {
		exts = make(map[string]struct{}, len(cfg.Extensions))
		for _, e := range cfg.Extensions {
			e = strings.ToLower(strings.TrimPrefix(e, "."))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	log := cfg.Logger
	if log == nil {
		log = nopLogger{}
	}

	return &Scanner{
		extensions:     exts,
		followSymlinks: cfg.FollowSymlinks,
		log:            log,
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Scan recursively collects audio files under folderPath.
//
// It fails only when folderPath is missing or is not a directory. Entries
// that cannot be read or stat'ed during the walk are skipped; one bad entry
// never aborts the whole scan. The returned slice is never nil on success.
func (s *Scanner) Scan(folderPath string) ([]models.MusicFile, error) {
	info, err := os.Stat(folderPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folderPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, folderPath)
	}

	files := make([]models.MusicFile, 0)

	err = godirwalk.Walk(folderPath, &godirwalk.Options{
		FollowSymbolicLinks: s.followSymlinks,
		// Sorted traversal keeps repeated scans of an unchanged tree
		// deterministic.
		Unsorted: false,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			// Stat resolves symlinks; anything unreadable or not a
			// regular file is skipped.
			st, err := os.Stat(path)
			if err != nil || !st.Mode().IsRegular() {
				return nil
			}
			if !isAudioIn(path, s.extensions) {
				return nil
			}
			files = append(files, s.newMusicFile(folderPath, path))
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			s.log.Debugf("skipping unreadable entry %s: %v", path, err)
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", folderPath, err)
	}

	return files, nil
}

// newMusicFile builds the record for a matched file. The folder field is the
// parent directory relative to root, or nil for files directly in the root.
func (s *Scanner) newMusicFile(root, path string) models.MusicFile {
	mf := models.MusicFile{
		Path:      path,
		Name:      filepath.Base(path),
		Extension: splitExtension(path),
	}

	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err == nil && rel != "" && rel != "." && !isOutsideRoot(rel) {
		mf.Folder = &rel
	}

	return mf
}

// isOutsideRoot reports whether a relative path escapes the scan root. A
// correct descent never produces one, but guard anyway.
func isOutsideRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
