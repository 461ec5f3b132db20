package models

// MusicFile is a single audio file discovered by a library scan.
// Folder is the containing directory relative to the scanned root; it is nil
// when the file sits directly in the root, and it is never an empty string.
type MusicFile struct {
	Path      string  `json:"path"`
	Name      string  `json:"name"`
	Extension string  `json:"extension"`
	Folder    *string `json:"folder"`
}
