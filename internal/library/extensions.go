package library

import (
	"path/filepath"
	"sort"
	"strings"
)

// audioExtensions is the set of recognized audio formats, keyed by lowercase
// extension without the leading dot. Adding a format means adding one entry.
var audioExtensions = map[string]struct{}{
	"mp3":  {},
	"wav":  {},
	"ogg":  {},
	"flac": {},
	"aac":  {},
	"m4a":  {},
	"wma":  {},
	"aiff": {},
	"ape":  {},
	"opus": {},
	"webm": {},
}

// DefaultExtensions returns the built-in audio extension allow-list, sorted.
func DefaultExtensions() []string {
	exts := make([]string, 0, len(audioExtensions))
	for ext := range audioExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// splitExtension returns the extension of path without the leading dot, or ""
// if the base name has none. A dotfile like ".mp3" counts as extensionless.
func splitExtension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return ""
	}
	return ext[1:]
}

// IsAudioFile reports whether path has an extension in the built-in
// allow-list, case-insensitively.
func IsAudioFile(path string) bool {
	return isAudioIn(path, audioExtensions)
}

func isAudioIn(path string, exts map[string]struct{}) bool {
	ext := splitExtension(path)
	if ext == "" {
		return false
	}
	_, ok := exts[strings.ToLower(ext)]
	return ok
}
