package library

import "os"

// Exists reports whether a filesystem entry is present at path. Any failure
// to check counts as absent; a symlink whose target is gone is absent too.
// The answer is advisory and may be stale as soon as it is returned.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
