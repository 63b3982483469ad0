package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// PlaceholderImage is the default image filename associated with a post when
// no valid upload is supplied.
const PlaceholderImage = "post-bg.jpg"

type Storage interface {
	SaveImage(fileName string, file io.Reader) (string, error)
	Allowed(fileName string) bool
}

// DiskStorage writes uploaded images flat into the configured upload
// directory, keyed by sanitized filename. Name collisions silently overwrite
// the existing file.
type DiskStorage struct {
	uploadDir string
}

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

func NewDiskStorage(uploadDir string) *DiskStorage {
	return &DiskStorage{uploadDir: uploadDir}
}

// Allowed reports whether the filename carries an accepted image extension.
// The check is case-insensitive and looks at the substring after the last dot.
func (s *DiskStorage) Allowed(fileName string) bool {
	if !strings.Contains(fileName, ".") {
		return false
	}
	ext := fileName[strings.LastIndex(fileName, ".")+1:]
	return allowedExtensions[strings.ToLower(ext)]
}

// SecureFilename derives a filesystem-safe name from the original: directory
// components are stripped, spaces become underscores and anything outside
// [A-Za-z0-9_.-] is dropped. The extension keeps its original case.
func SecureFilename(fileName string) string {
	name := filepath.Base(strings.ReplaceAll(fileName, `\`, "/"))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	return name
}

// SaveImage accepts an uploaded file and returns the filename to associate
// with a post. A missing file or a disallowed extension degrades to the
// placeholder filename without touching the filesystem.
func (s *DiskStorage) SaveImage(fileName string, file io.Reader) (string, error) {
	if file == nil || fileName == "" || !s.Allowed(fileName) {
		return PlaceholderImage, nil
	}

	name := SecureFilename(fileName)
	if name == "" {
		return PlaceholderImage, nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return name, nil
}
