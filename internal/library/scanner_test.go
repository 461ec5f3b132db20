package library

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/devansharora/tunedeck/pkg/models"
)

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()
	return NewScanner(ScanConfig{FollowSymlinks: true})
}

// writeFile creates a file (and any parent directories) under dir.
func writeFile(t *testing.T, dir string, rel string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanNonexistentPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-folder")

	_, err := newTestScanner(t).Scan(missing)
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	if !errors.Is(err, ErrFolderNotFound) {
		t.Errorf("expected ErrFolderNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the missing path", err)
	}
}

func TestScanNotADirectory(t *testing.T) {
	file := writeFile(t, t.TempDir(), "plain.txt")

	_, err := newTestScanner(t).Scan(file)
	if err == nil {
		t.Fatal("expected error for non-directory path")
	}
	if !errors.Is(err, ErrNotADirectory) {
		t.Errorf("expected ErrNotADirectory, got %v", err)
	}
	if !strings.Contains(err.Error(), file) {
		t.Errorf("error %q does not name the offending path", err)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	files, err := newTestScanner(t).Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if files == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestScanNestedTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "song.mp3")
	writeFile(t, dir, "sub/dir/track.flac")

	files, err := newTestScanner(t).Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}

	byName := make(map[string]models.MusicFile, len(files))
	for _, f := range files {
		byName[f.Name] = f
	}

	song, ok := byName["song.mp3"]
	if !ok {
		t.Fatal("song.mp3 not found in results")
	}
	if song.Extension != "mp3" {
		t.Errorf("expected extension mp3, got %q", song.Extension)
	}
	if song.Folder != nil {
		t.Errorf("expected nil folder for root-level file, got %q", *song.Folder)
	}

	track, ok := byName["track.flac"]
	if !ok {
		t.Fatal("track.flac not found in results")
	}
	if track.Extension != "flac" {
		t.Errorf("expected extension flac, got %q", track.Extension)
	}
	wantFolder := filepath.Join("sub", "dir")
	if track.Folder == nil || *track.Folder != wantFolder {
		t.Errorf("expected folder %q, got %v", wantFolder, track.Folder)
	}
	if track.Path != filepath.Join(dir, "sub", "dir", "track.flac") {
		t.Errorf("unexpected path %q", track.Path)
	}
}

func TestScanPreservesExtensionCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "LOUD.MP3")

	files, err := newTestScanner(t).Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Extension != "MP3" {
		t.Errorf("extension should keep its original case, got %q", files[0].Extension)
	}
}

func TestScanExcludesNonAudio(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "song.mp3")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "cover.jpg")
	writeFile(t, dir, "album/cover.png")
	writeFile(t, dir, "album/track.ogg")

	files, err := newTestScanner(t).Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 audio files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if f.Name != "song.mp3" && f.Name != "track.ogg" {
			t.Errorf("unexpected file in results: %q", f.Name)
		}
	}
}

func TestScanIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.mp3")
	writeFile(t, dir, "b/c.wav")
	writeFile(t, dir, "b/d/e.opus")

	s := newTestScanner(t)

	first, err := s.Scan(dir)
	if err != nil {
		t.Fatalf("first scan failed: %v", err)
	}
	second, err := s.Scan(dir)
	if err != nil {
		t.Fatalf("second scan failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("scan counts differ: %d vs %d", len(first), len(second))
	}

	paths := make(map[string]bool, len(first))
	for _, f := range first {
		paths[f.Path] = true
	}
	for _, f := range second {
		if !paths[f.Path] {
			t.Errorf("second scan found %q missing from first", f.Path)
		}
	}
}

func TestScanSkipsUnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits do not apply on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permissions are not enforced")
	}

	dir := t.TempDir()
	writeFile(t, dir, "ok.mp3")
	writeFile(t, dir, "locked/secret.mp3")
	writeFile(t, dir, "visible/other.wav")

	locked := filepath.Join(dir, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chmod(locked, 0o755)
	})

	files, err := newTestScanner(t).Scan(dir)
	if err != nil {
		t.Fatalf("scan should not fail on an unreadable subdirectory: %v", err)
	}

	names := make(map[string]bool, len(files))
	for _, f := range files {
		names[f.Name] = true
	}
	if !names["ok.mp3"] || !names["other.wav"] {
		t.Errorf("siblings of the unreadable directory missing: %v", names)
	}
	if names["secret.mp3"] {
		t.Error("unreadable entry should have been skipped")
	}
}

func TestScanFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, outside, "linked.ogg")

	link := filepath.Join(root, "external")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("cannot create symlinks here: %v", err)
	}

	files, err := newTestScanner(t).Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file via symlink, got %d", len(files))
	}
	if files[0].Name != "linked.ogg" {
		t.Errorf("unexpected file %q", files[0].Name)
	}
	if files[0].Folder == nil || *files[0].Folder != "external" {
		t.Errorf("expected folder %q, got %v", "external", files[0].Folder)
	}
}

func TestScanSymlinksDisabled(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, outside, "linked.ogg")

	if err := os.Symlink(outside, filepath.Join(root, "external")); err != nil {
		t.Skipf("cannot create symlinks here: %v", err)
	}

	s := NewScanner(ScanConfig{FollowSymlinks: false})
	files, err := s.Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files with symlink following disabled, got %d", len(files))
	}
}

func TestScanBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "song.mp3")

	if err := os.Symlink(filepath.Join(dir, "gone.flac"), filepath.Join(dir, "dangling.flac")); err != nil {
		t.Skipf("cannot create symlinks here: %v", err)
	}

	files, err := newTestScanner(t).Scan(dir)
	if err != nil {
		t.Fatalf("scan should tolerate broken symlinks: %v", err)
	}
	if len(files) != 1 || files[0].Name != "song.mp3" {
		t.Errorf("expected only song.mp3, got %v", files)
	}
}

func TestScanCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "take.mp3")
	writeFile(t, dir, "take.mid")

	s := NewScanner(ScanConfig{Extensions: []string{".mid"}})
	files, err := s.Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 || files[0].Name != "take.mid" {
		t.Errorf("expected only take.mid with a custom allow-list, got %v", files)
	}
}
