package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStorage persists uploaded certificate images in a flat directory.
// Files are stored under a fresh random token with the original extension
// preserved, so client-supplied names never touch the filesystem.
type LocalStorage struct {
	dir string
}

// StoredFile describes a file in the upload directory.
type StoredFile struct {
	Path    string
	ModTime time.Time
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes src into the upload directory under "<uuid><ext>" and returns
// the stored path. The partial file is removed if the copy fails.
func (s *LocalStorage) Save(originalName string, src io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close file %s: %w", path, err)
	}

	return path, nil
}

// Exists reports whether path still points at a regular file on disk.
func (s *LocalStorage) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes the file at path.
func (s *LocalStorage) Remove(path string) error {
	return os.Remove(path)
}

// List returns every file currently in the upload directory with its
// modification time.
func (s *LocalStorage) List() ([]StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory %s: %w", s.dir, err)
	}

	var files []StoredFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, StoredFile{
			Path:    filepath.Join(s.dir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}
